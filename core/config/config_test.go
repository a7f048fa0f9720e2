package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"kamau.dev/portfolio/core/config"
)

func setEnv(key, value string) {
	previous, had := os.LookupEnv(key)
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(func() {
		if had {
			_ = os.Setenv(key, previous)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func unsetEnv(key string) {
	previous, had := os.LookupEnv(key)
	Expect(os.Unsetenv(key)).To(Succeed())
	DeferCleanup(func() {
		if had {
			_ = os.Setenv(key, previous)
		}
	})
}

var _ = Describe("Load", func() {
	BeforeEach(func() {
		setEnv("PORTFOLIO_ENV", "test")
		unsetEnv("GROQ_API_KEY")
		unsetEnv("GROQ_API_KEY_FILE")
		unsetEnv("GROQ_MODEL")
		unsetEnv("CHAT_REVEAL_MS")
		unsetEnv("OTEL_TRACES_SAMPLE_RATIO")
	})

	It("samples every trace by default and accepts a ratio", func() {
		cfg, err := config.Load(config.ServiceTypeServer)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.OTel.SampleRatio).To(Equal(1.0))
		Expect(cfg.OTel.Environment).To(Equal("test"))

		setEnv("OTEL_TRACES_SAMPLE_RATIO", "0.1")
		cfg, err = config.Load(config.ServiceTypeServer)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.OTel.SampleRatio).To(Equal(0.1))
	})

	It("applies defaults for the completion endpoint", func() {
		cfg, err := config.Load(config.ServiceTypeServer)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Completion.Model).To(Equal("llama-3.1-8b-instant"))
		Expect(cfg.Completion.BaseURL).To(Equal("https://api.groq.com/openai/v1/"))
		Expect(cfg.Chat.RevealDuration).To(Equal(1500 * time.Millisecond))
		Expect(cfg.Chat.InitialDelay).To(Equal(500 * time.Millisecond))
	})

	It("leaves the credential empty when nothing is configured", func() {
		cfg, err := config.Load(config.ServiceTypeServer)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Completion.Enabled()).To(BeFalse())
	})

	It("reads and trims the credential from the environment", func() {
		setEnv("GROQ_API_KEY", "  gsk_test  \n")

		cfg, err := config.Load(config.ServiceTypeServer)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Completion.APIKey).To(Equal("gsk_test"))
	})

	It("falls back to a secret file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "groq")
		Expect(os.WriteFile(path, []byte("gsk_from_file\n"), 0o600)).To(Succeed())
		setEnv("GROQ_API_KEY_FILE", path)

		cfg, err := config.Load(config.ServiceTypeServer)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Completion.APIKey).To(Equal("gsk_from_file"))
	})

	It("fails when the secret file cannot be read", func() {
		setEnv("GROQ_API_KEY_FILE", filepath.Join(GinkgoT().TempDir(), "missing"))

		_, err := config.Load(config.ServiceTypeServer)
		Expect(err).To(MatchError(ContainSubstring("GROQ_API_KEY_FILE")))
	})

	It("ignores malformed integers", func() {
		setEnv("CHAT_REVEAL_MS", "soon")

		cfg, err := config.Load(config.ServiceTypeChat)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Chat.RevealDuration).To(Equal(1500 * time.Millisecond))
	})

	It("never logs the credential", func() {
		setEnv("GROQ_API_KEY", "gsk_secret")
		cfg, err := config.Load(config.ServiceTypeServer)
		Expect(err).NotTo(HaveOccurred())

		var buf bytes.Buffer
		slog.New(slog.NewTextHandler(&buf, nil)).Info("config", "completion", cfg.Completion)
		Expect(buf.String()).NotTo(ContainSubstring("gsk_secret"))
		Expect(buf.String()).To(ContainSubstring("credential_set=true"))
	})
})

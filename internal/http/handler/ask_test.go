package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"kamau.dev/portfolio/internal/http/handler"
	"kamau.dev/portfolio/internal/metrics"
	"kamau.dev/portfolio/internal/model"
	"kamau.dev/portfolio/internal/service"
)

var _ = Describe("AskHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAssistantService
		m      *metrics.Metrics
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockAssistantService{}
		m = metrics.New()
		h := handler.NewAskHandler(svc, m, "X-Trace-Id")
		router.POST("/api/ask", h.Ask)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/ask", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	errorOf := func(w *httptest.ResponseRecorder) string {
		var resp map[string]string
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		return resp["error"]
	}

	It("returns 200 with the reply wrapped in result", func() {
		var got []model.Message
		svc.askFn = func(_ context.Context, transcript []model.Message) (string, error) {
			got = transcript
			return "I build fintech apps 💪", nil
		}

		w := post(`{"messages":[{"role":"user","content":"What do you do?"}]}`)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp map[string]string
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(Equal(map[string]string{"result": "I build fintech apps 💪"}))

		Expect(got).To(HaveLen(1))
		Expect(got[0].Role).To(Equal(model.RoleUser))
		Expect(got[0].Content).To(Equal("What do you do?"))
		Expect(testutil.ToFloat64(m.AskOutcomesTotal.WithLabelValues("ok"))).To(Equal(1.0))
	})

	DescribeTable("rejects malformed bodies with 400 and never calls the service",
		func(body string) {
			w := post(body)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(errorOf(w)).To(Equal("Invalid messages format"))
			Expect(svc.calls).To(BeZero())
		},
		Entry("messages missing", `{}`),
		Entry("messages null", `{"messages":null}`),
		Entry("messages is a string", `{"messages":"hello"}`),
		Entry("messages is an object", `{"messages":{"role":"user","content":"hi"}}`),
		Entry("messages is a number", `{"messages":42}`),
		Entry("content is null", `{"messages":[{"role":"user","content":null}]}`),
		Entry("body is not JSON", `{`),
	)

	DescribeTable("maps service errors by kind",
		func(err error, status int, message string) {
			svc.askFn = func(context.Context, []model.Message) (string, error) {
				return "", err
			}

			w := post(`{"messages":[{"role":"user","content":"hi"}]}`)

			Expect(w.Code).To(Equal(status))
			Expect(errorOf(w)).To(Equal(message))
		},
		Entry("validation", &service.Error{Kind: service.KindValidation, Err: service.ErrEmptyTranscript},
			http.StatusBadRequest, "Invalid messages format"),
		Entry("configuration", &service.Error{Kind: service.KindConfiguration, Err: service.ErrNotConfigured},
			http.StatusInternalServerError, "API configuration error. Please check environment variables."),
		Entry("upstream", &service.Error{Kind: service.KindUpstream, StatusCode: 503, Body: "overloaded"},
			http.StatusBadGateway, "External API error. Please try again later."),
		Entry("anything else", errors.New("boom"),
			http.StatusInternalServerError, "Something went wrong"),
	)

	It("does not leak upstream detail to the client", func() {
		svc.askFn = func(context.Context, []model.Message) (string, error) {
			return "", &service.Error{Kind: service.KindUpstream, StatusCode: 401, Body: "invalid api key gsk_abc"}
		}

		w := post(`{"messages":[{"role":"user","content":"hi"}]}`)
		Expect(w.Body.String()).NotTo(ContainSubstring("gsk_abc"))
	})
})

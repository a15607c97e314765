package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AFSHAL-7/trustlens/internal/analyzer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return &Client{
		BaseURL: url,
		APIKey:  "test-key",
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func textPayload(text string) analyzer.Payload {
	return analyzer.Payload{Kind: analyzer.PayloadText, Text: text}
}

func TestAnalyzeSuccess(t *testing.T) {
	var gotReq AnalyzeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analyze", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"documentTitle":"Privacy Policy","companyName":"Acme","riskScore":72,"riskItems":[{"clause":"Data Sharing","risk":"r","impact":"i","recommendation":"rec","severity":"high"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	result, err := client.Analyze(context.Background(), textPayload("the document"))
	require.NoError(t, err)

	assert.Equal(t, "the document", gotReq.Text)
	assert.Equal(t, "Privacy Policy", result.DocumentTitle)
	assert.Equal(t, "Acme", result.CompanyName)
	assert.Equal(t, 72, result.RiskScore)
	require.Len(t, result.RiskItems, 1)
	assert.Equal(t, analyzer.SeverityHigh, result.RiskItems[0].Severity)
}

func TestAnalyzeRequestShapePerKind(t *testing.T) {
	tests := []struct {
		name    string
		payload analyzer.Payload
		check   func(t *testing.T, req AnalyzeRequest)
	}{
		{
			name:    "image",
			payload: analyzer.Payload{Kind: analyzer.PayloadImage, Data: "data:image/png;base64,AAAA"},
			check: func(t *testing.T, req AnalyzeRequest) {
				assert.Equal(t, "data:image/png;base64,AAAA", req.ImageData)
				assert.Equal(t, "image", req.Type)
				assert.Empty(t, req.Text)
			},
		},
		{
			name:    "pdf",
			payload: analyzer.Payload{Kind: analyzer.PayloadPDF, Data: "QUJD", FileName: "terms.pdf"},
			check: func(t *testing.T, req AnalyzeRequest) {
				assert.Equal(t, "QUJD", req.PDFData)
				assert.Equal(t, "terms.pdf", req.FileName)
				assert.Equal(t, "pdf", req.Type)
			},
		},
		{
			name:    "document",
			payload: analyzer.Payload{Kind: analyzer.PayloadDocument, Data: "QUJD", FileName: "contract.docx"},
			check: func(t *testing.T, req AnalyzeRequest) {
				assert.Equal(t, "QUJD", req.DocData)
				assert.Equal(t, "contract.docx", req.FileName)
				assert.Equal(t, "document", req.Type)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotReq AnalyzeRequest
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
				w.Write([]byte(`{"riskScore":50}`))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).Analyze(context.Background(), tt.payload)
			require.NoError(t, err)
			tt.check(t, gotReq)
		})
	}
}

func TestAnalyzeExtractsWrappedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 后端偶发在 JSON 外带说明文字
		w.Write([]byte("Here is the analysis:\n```json\n{\"documentTitle\":\"Terms of Service\",\"riskScore\":61}\n```\nDone."))
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).Analyze(context.Background(), textPayload("doc"))
	require.NoError(t, err)
	assert.Equal(t, "Terms of Service", result.DocumentTitle)
	assert.Equal(t, 61, result.RiskScore)
}

func TestAnalyzeStatusErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "backend validation",
			status: http.StatusBadRequest,
			body:   `{"error":"This doesn't appear to be a legal document."}`,
			check: func(t *testing.T, err error) {
				var verr *BackendValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "This doesn't appear to be a legal document.", verr.Message)
			},
		},
		{
			name:   "backend validation without message",
			status: http.StatusBadRequest,
			body:   `{}`,
			check: func(t *testing.T, err error) {
				var verr *BackendValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, "The document failed validation.", verr.Message)
			},
		},
		{
			name:   "rate limited",
			status: http.StatusTooManyRequests,
			body:   `{"error":"slow down"}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrRateLimited)
			},
		},
		{
			name:   "quota exceeded",
			status: http.StatusPaymentRequired,
			body:   `{"error":"credits depleted"}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrQuotaExceeded)
			},
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `{"error":"boom"}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrUnavailable)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).Analyze(context.Background(), textPayload("doc"))
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestAnalyzeMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Analyze(context.Background(), textPayload("doc"))

	var merr *MalformedResponseError
	require.ErrorAs(t, err, &merr)
	// 解析失败对调用方等同于后端不可用
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAnalyzeConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newTestClient(server.URL).Analyze(context.Background(), textPayload("doc"))
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAnalyzeNoAuthHeaderWithoutKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"riskScore":30}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	client.APIKey = ""
	_, err := client.Analyze(context.Background(), textPayload("doc"))
	require.NoError(t, err)
}

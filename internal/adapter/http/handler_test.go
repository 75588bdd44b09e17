package httpadapter

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"unsub-site/internal/core/domain"
	"unsub-site/internal/core/port"
	"unsub-site/internal/core/port/mocks"
)

func ptr(s string) *string { return &s }

func newTestHandler(t *testing.T) (http.Handler, *mocks.MockSubscriptionUseCase) {
	svc := mocks.NewMockSubscriptionUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger).Router(), svc
}

func serve(h http.Handler, req *http.Request) (*http.Response, string) {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	resp := rec.Result()
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestIndex(t *testing.T) {
	h, _ := newTestHandler(t)
	resp, body := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Subscription management")
}

func TestSubscribeWithCampaignWording(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().
		Subscribe(mock.Anything, "u@test.com", ptr("newsletter-2024")).
		Return(&port.ManageView{
			Subscription: domain.Subscription{Email: "u@test.com", Token: "tok123", IsSubscribed: true},
			Campaign: &domain.CampaignConfig{
				CampaignID: "newsletter-2024",
				HeaderText: "Newsletter Subscription Preferences",
				FooterText: "Thank you for helping us improve our communications.",
				YesText:    "YES - Continue receiving our newsletter",
				NoText:     "NO - Unsubscribe from newsletter",
			},
		}, nil)

	resp, body := serve(h, httptest.NewRequest(http.MethodGet, "/subscribe?email=u@test.com&id=newsletter-2024", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Newsletter Subscription Preferences")
	assert.Contains(t, body, "YES - Continue receiving our newsletter")
	assert.Contains(t, body, `action="/update/tok123"`)
	assert.Contains(t, body, `name="choice"`)
}

func TestSubscribeWithoutCampaign(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().
		Subscribe(mock.Anything, "a@x.com", (*string)(nil)).
		Return(&port.ManageView{
			Subscription: domain.Subscription{Email: "a@x.com", Token: "tok", IsSubscribed: true},
		}, nil)

	resp, body := serve(h, httptest.NewRequest(http.MethodGet, "/subscribe?email=a@x.com", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, domain.DefaultHeaderText)
	assert.Contains(t, body, `value="unsubscribe"`)
}

func TestSubscribeMissingEmail(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().
		Subscribe(mock.Anything, "", (*string)(nil)).
		Return(nil, port.ErrInvalidInput)

	resp, body := serve(h, httptest.NewRequest(http.MethodGet, "/subscribe", nil))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, msgMissingEmail)
}

func TestManageUnknownToken(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Manage(mock.Anything, "nope").Return(nil, port.ErrNotFound)

	resp, body := serve(h, httptest.NewRequest(http.MethodGet, "/manage/nope", nil))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, msgInvalidLink)
}

func TestManageUnsubscribedOffersResubscribe(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Manage(mock.Anything, "tok").Return(&port.ManageView{
		Subscription: domain.Subscription{Email: "a@x.com", Token: "tok", IsSubscribed: false},
	}, nil)

	resp, body := serve(h, httptest.NewRequest(http.MethodGet, "/manage/tok", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "unsubscribed")
	assert.Contains(t, body, `value="resubscribe"`)
}

func TestUpdateVocabulary(t *testing.T) {
	cases := []struct {
		form    url.Values
		action  domain.Action
		message string
	}{
		{url.Values{"action": {"unsubscribe"}}, domain.ActionUnsubscribe, msgUnsubscribed},
		{url.Values{"action": {"resubscribe"}}, domain.ActionSubscribe, msgResubscribed},
		{url.Values{"choice": {"no"}}, domain.ActionUnsubscribe, msgUnsubscribed},
		{url.Values{"choice": {"yes"}}, domain.ActionSubscribe, msgResubscribed},
		{url.Values{"action": {"unsubscribe"}, "choice": {"yes"}}, domain.ActionUnsubscribe, msgUnsubscribed},
	}
	for _, tc := range cases {
		h, svc := newTestHandler(t)
		svc.EXPECT().
			ApplyAction(mock.Anything, "tok", tc.action).
			Return(&domain.Subscription{Token: "tok", IsSubscribed: tc.action.Subscribed()}, nil)

		resp, body := serve(h, postForm("/update/tok", tc.form))
		assert.Equal(t, http.StatusOK, resp.StatusCode, tc.form.Encode())
		assert.Contains(t, body, tc.message, tc.form.Encode())
	}
}

func TestUpdateInvalidAction(t *testing.T) {
	h, svc := newTestHandler(t)

	resp, body := serve(h, postForm("/update/tok", url.Values{"action": {"destroy"}}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, msgInvalidAction)
	svc.AssertNotCalled(t, "ApplyAction", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateUnknownToken(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().
		ApplyAction(mock.Anything, "nonexistent-token", domain.ActionSubscribe).
		Return(nil, port.ErrNotFound)

	resp, body := serve(h, postForm("/update/nonexistent-token", url.Values{"action": {"resubscribe"}}))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, msgInvalidLink)
}

func TestUpdateInternalErrorIsGeneric(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().
		ApplyAction(mock.Anything, "tok", domain.ActionUnsubscribe).
		Return(nil, errors.New("pq: connection refused"))

	resp, body := serve(h, postForm("/update/tok", url.Values{"action": {"unsubscribe"}}))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, msgInternal)
	assert.NotContains(t, body, "connection refused")
}

func TestResourceExhaustedIsGeneric(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().
		Subscribe(mock.Anything, "a@x.com", (*string)(nil)).
		Return(nil, port.ErrResourceExhausted)

	resp, body := serve(h, httptest.NewRequest(http.MethodGet, "/subscribe?email=a@x.com", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body, msgInternal)
}

func TestHealth(t *testing.T) {
	h, svc := newTestHandler(t)
	svc.EXPECT().Healthy(mock.Anything).Return(nil).Once()
	svc.EXPECT().Healthy(mock.Anything).Return(errors.New("down")).Once()

	resp, body := serve(h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)

	resp, _ = serve(h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

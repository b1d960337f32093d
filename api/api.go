package api

import (
	"io"
	"net/http"
	"time"

	"github.com/daemond-dev/steam-market/errors"
	"github.com/daemond-dev/steam-market/logger"
	"github.com/daemond-dev/steam-market/parsers"
	"github.com/daemond-dev/steam-market/rate"
)

const (
	baseUrl = "https://steamcommunity.com"

	securedCookieName = "steamLoginSecure"
)

// Session carries the per-client request context shared by all endpoint
// wrappers: the optional secured login cookie and the locale parameters
// Steam expects on most market endpoints.
type Session struct {
	// SecuredCookie is the value of the steamLoginSecure cookie. When
	// set, requests are issued as a logged-in session, which gets wider
	// quota budgets.
	SecuredCookie string
	// Country is the two-letter country code (default "US").
	Country string
	// Language is Steam's language name (default "english").
	Language string
	// Currency is Steam's numeric currency id (default 1, USD).
	Currency int
}

type apiClient struct {
	httpClient *http.Client
	limiter    rate.Limiter
	session    Session
	logger     logger.Logger
}

func newApiClient(
	httpClient *http.Client,
	limiter rate.Limiter,
	session Session,
	logger logger.Logger,
) *apiClient {
	return &apiClient{
		httpClient: httpClient,
		limiter:    limiter,
		session:    session,
		logger:     logger,
	}
}

// getJson issues one rate-limited GET and decodes the body into resData.
//
// The limiter brackets the call: Before may block to enforce spacing and
// quota budgets, After reports the observed round trip. Only transport
// errors count as failures towards the limiter; a response with an HTTP
// error status still carries a usable latency and is reported as a
// sample.
func (c *apiClient) getJson(path string, resData any) *errors.ApiError {
	endpoint := baseUrl + "/" + path

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return &errors.ApiError{
			Stage:     errors.STAGE_BEFORE_REQUEST,
			Type:      errors.TYPE_REQUEST_PREP,
			SourceErr: err,
		}
	}

	req.Header.Set("Accept", "application/json")
	if c.session.SecuredCookie != "" {
		req.AddCookie(&http.Cookie{
			Name:  securedCookieName,
			Value: c.session.SecuredCookie,
		})
	}

	c.limiter.Before(req)

	start := time.Now()
	res, err := c.httpClient.Do(req)
	latency := time.Since(start)

	c.limiter.After(req, latency, err)

	if err != nil {
		return &errors.ApiError{
			Stage:     errors.STAGE_REQUEST,
			Type:      errors.TYPE_IO,
			SourceErr: err,
		}
	}

	var body []byte
	if res.Body != nil {
		body, err = io.ReadAll(res.Body)
		defer func() { _ = res.Body.Close() }()
		if err != nil {
			return &errors.ApiError{
				Stage:          errors.STAGE_AFTER_REQUEST,
				Type:           errors.TYPE_IO,
				Body:           body,
				HttpStatusCode: res.StatusCode,
				SourceErr:      err,
			}
		}
	}

	if res.StatusCode != http.StatusOK {
		errType := errors.TYPE_HTTP_STATUS
		if res.StatusCode == http.StatusTooManyRequests {
			errType = errors.TYPE_RATE_LIMITED
			c.logger.Warnf("api: Steam throttled %s (429)", path)
		}
		return &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errType,
			Body:           body,
			HttpStatusCode: res.StatusCode,
		}
	}

	jsonErr := parsers.DecodeEscaped(body, resData)
	if jsonErr != nil {
		return &errors.ApiError{
			Stage:          errors.STAGE_AFTER_REQUEST,
			Type:           errors.TYPE_JSON_PARSE,
			SourceErr:      jsonErr,
			Body:           body,
			HttpStatusCode: http.StatusOK,
		}
	}
	return nil
}

// steamFailed builds the error for a 200 response whose body carries
// "success": false. Steam uses this shape for unknown items and for some
// soft throttles.
func steamFailed(body string) *errors.ApiError {
	return &errors.ApiError{
		Stage:          errors.STAGE_AFTER_REQUEST,
		Type:           errors.TYPE_STEAM_FAILED,
		Body:           []byte(body),
		HttpStatusCode: http.StatusOK,
	}
}

// toNilErr converts a *errors.ApiError type to be a true nil interface.
// Internally, a Go interface has a Type and Value.
// An interface value is nil only if the V and T are both unset.
// See: https://go.dev/doc/faq#nil_error
func toNilErr[T any](r T, e *errors.ApiError) (T, error) {
	if e != nil {
		return r, e
	}
	return r, nil
}

package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"reflect"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/googleapi"

	"github.com/custodia-labs/gapi/internal/logger"
)

// Call holds the state of one API operation: method, path template, path
// parameters, optional query parameters and an optional body. Each Do or
// Download performs exactly one HTTP request.
type Call struct {
	client     *Client
	method     string
	path       string
	pathParams map[string]string
	params     url.Values
	header     http.Header
	ctx        context.Context
	body       any

	media      io.Reader
	mediaType  string
	uploadPath string
}

// NewCall starts a call. path is relative to the client's BasePath and may
// contain {name} (escaped) and {+name} (reserved) expansions, and a trailing
// ":verb" for custom methods.
func (c *Client) NewCall(method, path string, pathParams map[string]string) *Call {
	return &Call{
		client:     c,
		method:     method,
		path:       path,
		pathParams: pathParams,
		params:     make(url.Values),
		header:     make(http.Header),
	}
}

// SetQuery sets an optional query parameter. Parameters that are never set
// are never sent.
func (c *Call) SetQuery(key, value string) {
	c.params.Set(key, value)
}

// SetFields sets the partial response field mask.
func (c *Call) SetFields(s ...googleapi.Field) {
	c.params.Set("fields", googleapi.CombineFields(s))
}

// SetOptions applies per-call options such as googleapi.QuotaUser.
func (c *Call) SetOptions(opts ...googleapi.CallOption) {
	for _, o := range opts {
		k, v := o.Get()
		c.params.Set(k, v)
	}
}

// SetContext sets the context used for the request.
func (c *Call) SetContext(ctx context.Context) {
	c.ctx = ctx
}

// SetBody sets the value JSON-encoded as the request body. A nil value,
// including a nil resource pointer, is sent as an empty object.
func (c *Call) SetBody(v any) {
	if isNil(v) {
		c.body = struct{}{}
		return
	}
	c.body = v
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// SetMedia attaches content to upload. The call is then sent to uploadPath as
// a multipart/related request whose first part is the JSON body.
func (c *Call) SetMedia(r io.Reader, contentType, uploadPath string) {
	c.media = r
	c.mediaType = contentType
	c.uploadPath = uploadPath
}

// Header returns the http.Header sent with the request.
func (c *Call) Header() http.Header {
	return c.header
}

func (c *Call) rawURL() string {
	path := c.path
	if c.media != nil {
		path = c.uploadPath
		c.params.Set("uploadType", "multipart")
	}
	return googleapi.ResolveRelative(c.client.BasePath, path) + "?" + c.params.Encode()
}

// URL returns the fully expanded request URL for the parameters set so far.
func (c *Call) URL() (*url.URL, error) {
	u, err := url.Parse(c.rawURL())
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	googleapi.Expand(u, c.pathParams)
	return u, nil
}

func (c *Call) encodeBody() (io.Reader, string, error) {
	if c.media != nil {
		return c.multipartBody()
	}
	if c.body == nil {
		return nil, "", nil
	}
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(c.body); err != nil {
		return nil, "", fmt.Errorf("encode request body: %w", err)
	}
	return buf, "application/json", nil
}

func (c *Call) multipartBody() (io.Reader, string, error) {
	buf := new(bytes.Buffer)
	mw := multipart.NewWriter(buf)

	meta := c.body
	if meta == nil {
		meta = struct{}{}
	}
	pw, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {"application/json; charset=UTF-8"}})
	if err != nil {
		return nil, "", err
	}
	if err := json.NewEncoder(pw).Encode(meta); err != nil {
		return nil, "", fmt.Errorf("encode request body: %w", err)
	}

	pw, err = mw.CreatePart(textproto.MIMEHeader{"Content-Type": {c.mediaType}})
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(pw, c.media); err != nil {
		return nil, "", fmt.Errorf("read media: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return buf, "multipart/related; boundary=" + mw.Boundary(), nil
}

func (c *Call) doRequest(alt string) (*http.Response, error) {
	ctx := c.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	c.params.Set("alt", alt)
	c.params.Set("prettyPrint", "false")

	body, contentType, err := c.encodeBody()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, c.method, c.rawURL(), body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range c.header {
		req.Header[k] = v
	}
	req.Header.Set("User-Agent", c.client.userAgent())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	googleapi.Expand(req.URL, c.pathParams)

	limiter := c.client.RateLimiter
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	id := uuid.NewString()
	logger.Request(id, c.method, req.URL.String())
	start := time.Now()

	res, err := c.client.client.Do(req)
	if err != nil {
		logger.Warn("request %s failed: %v", id, err)
		return nil, err
	}
	logger.Response(id, res.StatusCode, time.Since(start))

	if limiter != nil {
		limiter.RecordResponse(res)
	}
	return res, nil
}

// Do performs the request and decodes a JSON response into out, which may be
// nil for operations without a response body. Non-2xx responses are returned
// as *googleapi.Error.
func (c *Call) Do(out any) (googleapi.ServerResponse, error) {
	res, err := c.doRequest("json")
	if err != nil {
		return googleapi.ServerResponse{}, err
	}
	defer googleapi.CloseBody(res)

	if err := googleapi.CheckResponse(res); err != nil {
		return googleapi.ServerResponse{}, err
	}

	sr := googleapi.ServerResponse{
		HTTPStatusCode: res.StatusCode,
		Header:         res.Header,
	}
	if out == nil {
		return sr, nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return sr, err
	}
	return sr, nil
}

// Download performs the request with alt=media and returns the raw response.
// The caller must close the body.
func (c *Call) Download() (*http.Response, error) {
	res, err := c.doRequest("media")
	if err != nil {
		return nil, err
	}
	if err := googleapi.CheckMediaResponse(res); err != nil {
		res.Body.Close()
		return nil, err
	}
	return res, nil
}

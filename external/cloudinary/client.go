package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/suappstudio/matchday/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
)

const (
	defaultBaseURL     = "https://api.cloudinary.com/v1_1"
	defaultFolder      = "matchday"
	faceTransformation = "w_400,h_400,c_fill,g_face/q_auto,f_auto"
)

var errUploadRejected = crerr.New("cloudinary upload rejected")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	CloudName  string
	APIKey     string
	APISecret  string
	Folder     string
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client talks to the Cloudinary image upload API with signed requests.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cloudName  string
	apiKey     string
	apiSecret  string
	folder     string
	logger     *logging.Logger
	now        func() time.Time
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	folder := strings.TrimSpace(cfg.Folder)
	if folder == "" {
		folder = defaultFolder
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		cloudName:  strings.TrimSpace(cfg.CloudName),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		apiSecret:  strings.TrimSpace(cfg.APISecret),
		folder:     folder,
		logger:     logger,
		now:        time.Now,
	}
}

// Configured reports whether every credential needed for signed calls is
// present. An unconfigured client must never be called.
func (c *Client) Configured() bool {
	return c.cloudName != "" && c.apiKey != "" && c.apiSecret != ""
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload pushes the image under the given public id and returns its
// delivery URL with the face-crop transformation applied.
func (c *Client) Upload(ctx context.Context, publicID string, content io.Reader) (string, error) {
	if !c.Configured() {
		return "", crerr.New("cloudinary credentials are not configured")
	}

	timestamp := strconv.FormatInt(c.now().UTC().Unix(), 10)
	signedParams := map[string]string{
		"folder":         c.folder,
		"overwrite":      "true",
		"public_id":      publicID,
		"timestamp":      timestamp,
		"transformation": faceTransformation,
	}
	signature := c.sign(signedParams)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	form := multipart.NewWriter(buf)
	for key, value := range signedParams {
		if err := form.WriteField(key, value); err != nil {
			return "", crerr.Wrapf(err, "write form field %s", key)
		}
	}
	if err := form.WriteField("api_key", c.apiKey); err != nil {
		return "", crerr.Wrap(err, "write form field api_key")
	}
	if err := form.WriteField("signature", signature); err != nil {
		return "", crerr.Wrap(err, "write form field signature")
	}

	part, err := form.CreateFormFile("file", publicID)
	if err != nil {
		return "", crerr.Wrap(err, "create file form part")
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", crerr.Wrap(err, "copy image into form")
	}
	if err := form.Close(); err != nil {
		return "", crerr.Wrap(err, "finalize multipart form")
	}

	endpoint := fmt.Sprintf("%s/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(buf.B))
	if err != nil {
		return "", crerr.Wrap(err, "build upload request")
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", crerr.Wrap(err, "send upload request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", crerr.Wrap(err, "read upload response")
	}

	var decoded uploadResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return "", crerr.Wrapf(err, "decode upload response status=%d", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := decoded.Error.Message
		if message == "" {
			message = strings.TrimSpace(string(raw))
		}
		return "", crerr.Wrapf(errUploadRejected, "status=%d message=%s", resp.StatusCode, message)
	}
	if decoded.SecureURL == "" {
		return "", crerr.New("upload response missing secure_url")
	}

	c.logger.InfoContext(ctx, "cloudinary upload completed", "public_id", decoded.PublicID)

	return decoded.SecureURL, nil
}

type destroyResponse struct {
	Result string `json:"result"`
}

// Destroy removes the image with the given public id. A missing image
// counts as success.
func (c *Client) Destroy(ctx context.Context, publicID string) error {
	if !c.Configured() {
		return crerr.New("cloudinary credentials are not configured")
	}

	timestamp := strconv.FormatInt(c.now().UTC().Unix(), 10)
	signedParams := map[string]string{
		"public_id": publicID,
		"timestamp": timestamp,
	}
	signature := c.sign(signedParams)

	form := make([]string, 0, len(signedParams)+2)
	for key, value := range signedParams {
		form = append(form, key+"="+value)
	}
	form = append(form, "api_key="+c.apiKey, "signature="+signature)

	endpoint := fmt.Sprintf("%s/%s/image/destroy", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(strings.Join(form, "&")))
	if err != nil {
		return crerr.Wrap(err, "build destroy request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return crerr.Wrap(err, "send destroy request")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return crerr.Wrap(err, "read destroy response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return crerr.Newf("destroy rejected status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var decoded destroyResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return crerr.Wrap(err, "decode destroy response")
	}
	if decoded.Result != "ok" && decoded.Result != "not found" {
		return crerr.Newf("destroy result=%s", decoded.Result)
	}

	return nil
}

// sign produces the request signature: the signed params sorted by key,
// joined as key=value pairs with &, with the API secret appended, hashed
// with SHA-1.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+params[key])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(sum[:])
}

package service

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"cork/internal/dto"
	"cork/pkg/config"

	"github.com/Role1776/gigago"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LLMService struct {
	client      *gigago.Client
	model       *gigago.GenerativeModel
	config      *config.GigaChatConfig
	domain      string
	count       int
	logger      *zap.Logger
	httpClient  *http.Client
	baseURL     string
	accessToken string // Cached access token for file uploads
}

// buildSystemInstruction creates the sommelier system instruction scoped to
// the configured regional domain.
func buildSystemInstruction(domain string, count int) string {
	return fmt.Sprintf(`You are an expert sommelier specialising in %s wines. Your job is to turn a customer's free-text preference into wine recommendations.

# RESPONSE FORMAT

Always respond with a JSON array of exactly %d wine objects in this shape:
[
  {
    "name": "producer and label",
    "type": "varietal or category",
    "region": "region of origin",
    "vintage": "4-digit year, or empty string if non-vintage",
    "description": "2-3 sentences of tasting notes",
    "priceRange": "approximate retail range with currency",
    "abv": "alcohol percentage, e.g. 13.5%%",
    "rating": "critic-style score, e.g. 94/100",
    "matchReason": "one sentence on why this wine fits the request"
  }
]

# RULES

- Recommend only %s wines
- Order the array best match first
- Every wine must be a real, purchasable wine
- Return ONLY the JSON array, no markdown fences, no commentary before or after
- Never return an empty array for a wine-related request`, domain, count, domain)
}

func NewLLMService(cfg *config.GigaChatConfig, recCfg *config.RecommendConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}

	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = buildSystemInstruction(recCfg.Domain, recCfg.Count)
	model.Temperature = 0.4

	// HTTP client for file uploads and vision calls
	httpClient := &http.Client{}
	if cfg.InsecureSkipVerify {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	accessToken, err := getAccessToken(ctx, cfg, httpClient, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}

	return &LLMService{
		client:      client,
		model:       model,
		config:      cfg,
		domain:      recCfg.Domain,
		count:       recCfg.Count,
		logger:      logger,
		httpClient:  httpClient,
		accessToken: accessToken,
		// Base URL for GigaChat REST API
		// Documentation: https://developers.sber.ru/docs/ru/gigachat/api/main
		baseURL: "https://gigachat.devices.sberbank.ru/api/v1",
	}, nil
}

// getAccessToken obtains an access token from the GigaChat OAuth endpoint.
// Needed for file uploads and direct vision API calls. The API key is already
// Base64-encoded per the GigaChat docs.
func getAccessToken(ctx context.Context, cfg *config.GigaChatConfig, httpClient *http.Client, logger *zap.Logger) (string, error) {
	oauthURL := "https://ngw.devices.sberbank.ru:9443/api/v2/oauth"

	rqUID := uuid.New().String()

	formData := url.Values{}
	formData.Set("scope", cfg.Scope)

	req, err := http.NewRequestWithContext(ctx, "POST", oauthURL, strings.NewReader(formData.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create OAuth request: %w", err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("RqUID", rqUID)
	req.Header.Set("Authorization", "Basic "+cfg.APIKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to get access token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		logger.Error("OAuth request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("rq_uid", rqUID),
		)
		return "", fmt.Errorf("OAuth failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var oauthResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&oauthResp); err != nil {
		return "", fmt.Errorf("failed to decode OAuth response: %w", err)
	}

	if oauthResp.AccessToken == "" {
		return "", fmt.Errorf("empty access token in OAuth response")
	}

	return oauthResp.AccessToken, nil
}

// GenerateWineRecommendations asks the model for wines matching the query and
// parses the JSON it returns. Callers treat any error here as a soft failure.
func (s *LLMService) GenerateWineRecommendations(ctx context.Context, query string) ([]*dto.Wine, error) {
	prompt := fmt.Sprintf(`A customer asked for: %q

Recommend exactly %d %s wines matching this request.

Return ONLY the JSON array described in your instructions.`, query, s.count, s.domain)

	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("failed to generate response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from LLM")
	}

	wines, err := parseWineList(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Wine recommendations generated",
		zap.String("query", query),
		zap.Int("count", len(wines)),
	)

	return wines, nil
}

// parseWineList extracts a wine array from model output, tolerating markdown
// fences and commentary around the JSON.
func parseWineList(content string) ([]*dto.Wine, error) {
	content = strings.TrimSpace(content)

	jsonStart := strings.Index(content, "[")
	jsonEnd := strings.LastIndex(content, "]")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		return nil, fmt.Errorf("invalid response format: %s", content)
	}

	jsonStr := content[jsonStart : jsonEnd+1]

	var wines []*dto.Wine
	if err := json.Unmarshal([]byte(jsonStr), &wines); err != nil {
		// Try to clean up JSON string (remove markdown code blocks if present)
		jsonStr = strings.TrimSpace(jsonStr)
		jsonStr = strings.TrimPrefix(jsonStr, "```json")
		jsonStr = strings.TrimPrefix(jsonStr, "```")
		jsonStr = strings.TrimSuffix(jsonStr, "```")
		jsonStr = strings.TrimSpace(jsonStr)

		if err := json.Unmarshal([]byte(jsonStr), &wines); err != nil {
			return nil, fmt.Errorf("failed to parse JSON response: %w", err)
		}
	}

	// Drop entries missing the required identity fields
	valid := wines[:0]
	for _, w := range wines {
		if strings.TrimSpace(w.Name) == "" || strings.TrimSpace(w.Type) == "" {
			continue
		}
		w.Name = sanitizeUTF8(w.Name)
		w.Description = sanitizeUTF8(w.Description)
		w.MatchReason = sanitizeUTF8(w.MatchReason)
		valid = append(valid, w)
	}

	if len(valid) == 0 {
		return nil, fmt.Errorf("no usable wines in response")
	}

	return valid, nil
}

// parseWine extracts a single wine object from vision output.
func parseWine(content string) (*dto.Wine, error) {
	content = strings.TrimSpace(content)

	jsonStart := strings.Index(content, "{")
	jsonEnd := strings.LastIndex(content, "}")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		return nil, fmt.Errorf("invalid response format: %s", content)
	}

	var wine dto.Wine
	if err := json.Unmarshal([]byte(content[jsonStart:jsonEnd+1]), &wine); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if strings.TrimSpace(wine.Name) == "" {
		return nil, fmt.Errorf("no wine name recognised on label")
	}

	wine.Name = sanitizeUTF8(wine.Name)
	wine.Description = sanitizeUTF8(wine.Description)

	return &wine, nil
}

// UploadFile uploads a file to GigaChat and returns the file ID.
// Documentation: https://developers.sber.ru/docs/ru/gigachat/api/main
// Endpoint: POST /files
func (s *LLMService) UploadFile(ctx context.Context, fileReader io.Reader, fileName string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	// "general" purpose allows using uploaded files in generation requests
	if err := writer.WriteField("purpose", "general"); err != nil {
		return "", fmt.Errorf("failed to write purpose field: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		switch ext {
		case ".jpg", ".jpeg":
			mimeType = "image/jpeg"
		case ".png":
			mimeType = "image/png"
		default:
			mimeType = "application/octet-stream"
		}
	}

	part, err := writer.CreatePart(map[string][]string{
		"Content-Type":        {mimeType},
		"Content-Disposition": {fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName)},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}

	if _, err := io.Copy(part, fileReader); err != nil {
		return "", fmt.Errorf("failed to copy file: %w", err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/files", &body)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusRequestEntityTooLarge {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("file too large (413): %s", string(bodyBytes))
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var uploadResp struct {
		ID string `json:"id"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	s.logger.Info("File uploaded to GigaChat", zap.String("file_id", uploadResp.ID))

	return uploadResp.ID, nil
}

// ExtractWineFromImage uploads a label photo and asks the vision model to
// read it into a structured wine record.
func (s *LLMService) ExtractWineFromImage(ctx context.Context, fileReader io.Reader, fileName string) (*dto.Wine, error) {
	fileID, err := s.UploadFile(ctx, fileReader, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to upload label image: %w", err)
	}

	prompt := `This is a photo of a wine bottle label. Read the label and return ONE JSON object:
{
  "name": "producer and label as printed",
  "type": "varietal or category",
  "region": "region of origin if printed, otherwise empty string",
  "vintage": "4-digit year if printed, otherwise empty string",
  "description": "2-3 sentences describing this wine's typical style",
  "priceRange": "approximate retail range with currency, or empty string",
  "abv": "alcohol percentage if printed, otherwise empty string",
  "rating": "typical critic score, or empty string"
}

Return ONLY the JSON object. If the image is not a wine label, return {"name": ""}.`

	content, err := s.completeWithAttachment(ctx, fileID, prompt)
	if err != nil {
		return nil, err
	}

	return parseWine(content)
}

// completeWithAttachment calls chat/completions with a file attachment.
// The gigago client does not expose attachments, so this goes through the
// REST API directly. Attachment format per the docs: [["file_id"]].
func (s *LLMService) completeWithAttachment(ctx context.Context, fileID, prompt string) (string, error) {
	requestBody := map[string]interface{}{
		"model": "GigaChat",
		"messages": []map[string]interface{}{
			{
				"role":        "user",
				"content":     prompt,
				"attachments": [][]string{{fileID}},
			},
		},
		"temperature": 0.3,
		"stream":      false,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.accessToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("vision API failed with status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var visionResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&visionResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(visionResp.Choices) == 0 {
		return "", fmt.Errorf("no response from vision API")
	}

	return strings.TrimSpace(visionResp.Choices[0].Message.Content), nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}

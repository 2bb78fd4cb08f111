package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// SendDocumentResult результат отправки документа
type SendDocumentResult struct {
	MessageID int64    `json:"message_id"`
	Chat      ChatInfo `json:"chat"`
	Date      int64    `json:"date"`
}

// SendDocumentResponse ответ от Telegram API на sendDocument
type SendDocumentResponse struct {
	APIResponse
	Result SendDocumentResult `json:"result"`
}

// SendDocument отправляет файл в чат (multipart/form-data), используется для /export
func (c *Client) SendDocument(ctx context.Context, chatID int64, filename string, data []byte, caption string) error {
	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	if err := writer.WriteField("chat_id", fmt.Sprintf("%d", chatID)); err != nil {
		return fmt.Errorf("failed to write chat_id field: %w", err)
	}

	if caption != "" {
		if err := writer.WriteField("caption", caption); err != nil {
			return fmt.Errorf("failed to write caption field: %w", err)
		}
	}

	part, err := writer.CreateFormFile("document", filename)
	if err != nil {
		return fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("failed to write document data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close multipart writer: %w", err)
	}

	url := c.baseURL + "/sendDocument"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &requestBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Debug("telegram sendDocument request failed",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("telegram request failed [chat_id=%d]: %w", chatID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("telegram read body failed [chat_id=%d, status=%d]: %w",
			chatID, resp.StatusCode, err)
	}

	var apiResp SendDocumentResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		c.log.Error("failed to unmarshal sendDocument response",
			"error", err,
			"chat_id", chatID,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return fmt.Errorf("telegram unmarshal failed [chat_id=%d, status=%d]: %w",
			chatID, resp.StatusCode, err)
	}

	if !apiResp.OK {
		c.log.Debug("telegram sendDocument API error",
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
			"chat_id", chatID,
			"status_code", resp.StatusCode,
		)
		return fmt.Errorf("telegram API error [code=%d, chat_id=%d]: %s",
			apiResp.ErrorCode, chatID, apiResp.Description)
	}

	c.log.Debug("document sent successfully",
		"chat_id", chatID,
		"message_id", apiResp.Result.MessageID,
	)
	return nil
}

package funtranslations

import (
	"context"

	"pokedex.dev/pokedex-api/app/utils/httpclients"
	"pokedex.dev/pokedex-api/config/environment_variables"
	"resty.dev/v3"
)

const upstreamName = "funtranslations"

type Client struct {
	restyClient *resty.Client
	baseURL     string
	apiSecret   string
}

func NewClient() *Client {
	env := environment_variables.EnvironmentVariables
	return New(
		httpclients.NewClient("FunTranslationsClient"),
		env.FunTranslationsBaseURL(),
		env.FUNTRANSLATIONS_API_SECRET,
	)
}

func New(restyClient *resty.Client, baseURL string, apiSecret string) *Client {
	return &Client{
		restyClient: restyClient,
		baseURL:     baseURL,
		apiSecret:   apiSecret,
	}
}

type TranslateRequest struct {
	Text string `json:"text"`
}

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type TranslateResponse struct {
	Success *struct {
		Total int `json:"total"`
	} `json:"success,omitempty"`
	Contents struct {
		Translated  string `json:"translated"`
		Text        string `json:"text"`
		Translation string `json:"translation"`
	} `json:"contents"`
	Error *APIError `json:"error,omitempty"`
}

// Translate posts text to /{translation}.json. Non-2xx responses come back as
// *httpclients.StatusError; a 2xx body is returned as-is for the caller to judge.
func (c *Client) Translate(ctx context.Context, translation string, text string) (*TranslateResponse, error) {
	var result TranslateResponse
	req := c.restyClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetPathParam("translation", translation).
		SetBody(TranslateRequest{Text: text}).
		SetResult(&result)
	if c.apiSecret != "" {
		req.SetHeader("X-Funtranslations-Api-Secret", c.apiSecret)
	}

	resp, err := req.Post(c.baseURL + "/{translation}.json")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, &httpclients.StatusError{Upstream: upstreamName, StatusCode: resp.StatusCode()}
	}
	return &result, nil
}

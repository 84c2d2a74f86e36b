package pokeapi

import (
	"context"

	"pokedex.dev/pokedex-api/app/utils/httpclients"
	"pokedex.dev/pokedex-api/config/environment_variables"
	"resty.dev/v3"
)

const upstreamName = "pokeapi"

type Client struct {
	restyClient *resty.Client
	baseURL     string
}

func NewClient() *Client {
	return New(
		httpclients.NewClient("PokeAPIClient"),
		environment_variables.EnvironmentVariables.PokeAPIBaseURL(),
	)
}

func New(restyClient *resty.Client, baseURL string) *Client {
	return &Client{
		restyClient: restyClient,
		baseURL:     baseURL,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

// SpeciesResponse matches the subset of /pokemon-species/{name} we read.
type SpeciesResponse struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	IsLegendary       bool              `json:"is_legendary"`
	IsMythical        bool              `json:"is_mythical"`
	Habitat           *NamedResource    `json:"habitat"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
}

type speciesListResponse struct {
	Count int `json:"count"`
}

// GetSpecies returns *httpclients.StatusError for non-2xx responses.
func (c *Client) GetSpecies(ctx context.Context, name string) (*SpeciesResponse, error) {
	var result SpeciesResponse
	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("name", name).
		SetResult(&result).
		Get(c.baseURL + "/pokemon-species/{name}")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, &httpclients.StatusError{Upstream: upstreamName, StatusCode: resp.StatusCode()}
	}
	return &result, nil
}

// Ping requests the smallest species page to confirm the upstream answers.
func (c *Client) Ping(ctx context.Context) error {
	var result speciesListResponse
	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetQueryParam("limit", "1").
		SetResult(&result).
		Get(c.baseURL + "/pokemon-species")
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return &httpclients.StatusError{Upstream: upstreamName, StatusCode: resp.StatusCode()}
	}
	return nil
}

package pokeapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const DefaultBaseUrl = "https://pokeapi.co/api/v2"

var clientLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "pokeapi-client").Logger()
	return &logger
}()

type Config struct {
	// HttpClient handles every outgoing request. Defaults to http.DefaultClient
	HttpClient *http.Client
	// BaseUrl is the api root. Defaults to DefaultBaseUrl
	BaseUrl string
}

// Client talks to the pokeapi. It issues exactly one request per resource it
// is asked for: no retries, no caching.
type Client struct {
	httpClient *http.Client
	baseUrl    string
}

func NewClient(cfg Config) *Client {
	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	baseUrl := cfg.BaseUrl
	if baseUrl == "" {
		baseUrl = DefaultBaseUrl
	}

	return &Client{
		httpClient: httpClient,
		baseUrl:    strings.TrimSuffix(baseUrl, "/"),
	}
}

// Pokemon fetches the document for a named pokemon. Names are
// case-insensitive; they get lowercased before going into the request path.
func (c *Client) Pokemon(name string) (*Pokemon, error) {
	url := fmt.Sprintf("%s/pokemon/%s", c.baseUrl, strings.ToLower(name))

	pokemon := new(Pokemon)
	if err := c.getJson(url, pokemon); err != nil {
		return nil, fmt.Errorf("fetching pokemon %q: %w", name, err)
	}

	return pokemon, nil
}

// Move follows a move detail url taken out of a pokemon document.
func (c *Client) Move(url string) (*Move, error) {
	move := new(Move)
	if err := c.getJson(url, move); err != nil {
		return nil, fmt.Errorf("fetching move at %s: %w", url, err)
	}

	return move, nil
}

// getJson issues a single GET and decodes the body into result. The status
// code is never consulted: an error body that still parses as json comes back
// as a document and the caller finds out when a projection comes up empty.
// Anything that doesn't parse is a fetch error.
func (c *Client) getJson(url string, result any) error {
	clientLogger.Debug().Str("url", url).Msg("GET")

	response, err := c.httpClient.Get(url)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	bytes, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(bytes, result); err != nil {
		return fmt.Errorf("decoding response from %s: %w", url, err)
	}

	return nil
}

// Package client is the Go consumer of the fitclub HTTP API. It provides a
// thin request client plus two cached views: Store, the admin working set
// with optimistic mutations, and PublicStore, the read-only slice of the API
// used by the marketing pages.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fitclub-backend/internal/models"
)

type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken installs the bearer token for the admin endpoints.
func (c *Client) SetToken(token string) { c.token = token }

// Login exchanges the shared dashboard password for a token and installs it.
func (c *Client) Login(password string) error {
	var res struct {
		Token string `json:"token"`
	}
	if err := c.do(http.MethodPost, "/api/auth/login", map[string]string{"password": password}, &res); err != nil {
		return err
	}
	c.token = res.Token
	return nil
}

func (c *Client) do(method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// ----------------------------------------
// READS
// ----------------------------------------

func (c *Client) Members() ([]models.Member, error) {
	var out []models.Member
	err := c.do(http.MethodGet, "/api/members", nil, &out)
	return out, err
}

func (c *Client) Trainers() ([]models.Trainer, error) {
	var out []models.Trainer
	err := c.do(http.MethodGet, "/api/trainers", nil, &out)
	return out, err
}

func (c *Client) Packages() ([]models.Package, error) {
	var out []models.Package
	err := c.do(http.MethodGet, "/api/packages", nil, &out)
	return out, err
}

func (c *Client) Gallery() ([]models.GalleryItem, error) {
	var out []models.GalleryItem
	err := c.do(http.MethodGet, "/api/gallery", nil, &out)
	return out, err
}

func (c *Client) Branches() ([]models.Branch, error) {
	var out []models.Branch
	err := c.do(http.MethodGet, "/api/branches", nil, &out)
	return out, err
}

func (c *Client) Contacts() ([]models.ContactSubmission, error) {
	var out []models.ContactSubmission
	err := c.do(http.MethodGet, "/api/contact", nil, &out)
	return out, err
}

// SearchMember looks up a member by card id, case-insensitively.
func (c *Client) SearchMember(id string) (models.Member, error) {
	var out models.Member
	err := c.do(http.MethodGet, "/api/members/search?id="+id, nil, &out)
	return out, err
}

// ----------------------------------------
// MUTATIONS
// ----------------------------------------

func (c *Client) CreateMember(m models.Member) (models.Member, error) {
	var out models.Member
	err := c.do(http.MethodPost, "/api/members", m, &out)
	return out, err
}

func (c *Client) UpdateMember(m models.Member) error {
	return c.do(http.MethodPut, "/api/members", m, nil)
}

func (c *Client) DeleteMember(id string) error {
	return c.do(http.MethodDelete, "/api/members?id="+id, nil, nil)
}

func (c *Client) RenewPlan(id string, req interface{}) (models.Member, error) {
	var out models.Member
	err := c.do(http.MethodPost, "/api/members/"+id+"/renew-plan", req, &out)
	return out, err
}

func (c *Client) RenewMembership(id string, req interface{}) (models.Member, error) {
	var out models.Member
	err := c.do(http.MethodPost, "/api/members/"+id+"/renew-membership", req, &out)
	return out, err
}

func (c *Client) CreateTrainer(t models.Trainer) (models.Trainer, error) {
	var out models.Trainer
	err := c.do(http.MethodPost, "/api/trainers", t, &out)
	return out, err
}

func (c *Client) UpdateTrainer(t models.Trainer) error {
	return c.do(http.MethodPut, "/api/trainers", t, nil)
}

func (c *Client) DeleteTrainer(id string) error {
	return c.do(http.MethodDelete, "/api/trainers?id="+id, nil, nil)
}

func (c *Client) CreatePackage(p models.Package) (models.Package, error) {
	var out models.Package
	err := c.do(http.MethodPost, "/api/packages", p, &out)
	return out, err
}

func (c *Client) UpdatePackage(p models.Package) error {
	return c.do(http.MethodPut, "/api/packages", p, nil)
}

func (c *Client) DeletePackage(id string) error {
	return c.do(http.MethodDelete, "/api/packages?id="+id, nil, nil)
}

func (c *Client) CreateGalleryItem(g models.GalleryItem) (models.GalleryItem, error) {
	var out models.GalleryItem
	err := c.do(http.MethodPost, "/api/gallery", g, &out)
	return out, err
}

func (c *Client) DeleteGalleryItem(id string) error {
	return c.do(http.MethodDelete, "/api/gallery?id="+id, nil, nil)
}

func (c *Client) CreateBranch(b models.Branch) (models.Branch, error) {
	var out models.Branch
	err := c.do(http.MethodPost, "/api/branches", b, &out)
	return out, err
}

func (c *Client) DeleteBranch(id string) error {
	return c.do(http.MethodDelete, "/api/branches?id="+id, nil, nil)
}

func (c *Client) DeleteContact(id string) error {
	return c.do(http.MethodDelete, "/api/contact?id="+id, nil, nil)
}

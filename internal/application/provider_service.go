package application

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/plateforme/services-api/internal/domain/entity"
	"github.com/plateforme/services-api/internal/domain/policy"
	"github.com/plateforme/services-api/internal/domain/repository"
	"github.com/plateforme/services-api/pkg/helpers"
)

type ProviderService struct {
	Providers repository.ProviderRepository
	ES        *elasticsearch.Client
	ESIndex   string
	Logger    *logrus.Logger
}

func NewProviderService(providers repository.ProviderRepository, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *ProviderService {
	return &ProviderService{Providers: providers, ES: es, ESIndex: esIndex, Logger: logger}
}

type RegisterProviderInput struct {
	Name        string
	Service     string
	Email       string
	PhoneNumber *string
	Username    string
	Password    string
}

// Register provisions a provider account atomically, same contract as
// ClientService.Register.
func (s *ProviderService) Register(ctx context.Context, in RegisterProviderInput) (*entity.Provider, error) {
	if strings.TrimSpace(in.Password) == "" {
		return nil, validationError("password", "password is required to create an account")
	}
	username := in.Username
	if username == "" {
		username = in.Email
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{Username: username, Email: in.Email, PasswordHash: hash}
	p := &entity.Provider{Name: in.Name, Service: in.Service, Email: in.Email, PhoneNumber: in.PhoneNumber}
	if err := s.Providers.CreateWithUser(ctx, u, p); err != nil {
		return nil, translateRepoErr(err)
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"provider_id": p.ID, "user_id": u.ID}).Info("provider account provisioned")
	}
	_ = s.indexProvider(ctx, p)
	return p, nil
}

// List returns the public provider directory.
func (s *ProviderService) List(ctx context.Context) ([]entity.Provider, error) {
	return s.Providers.List(ctx)
}

func (s *ProviderService) Get(ctx context.Context, actor policy.Actor, id int64) (*entity.Provider, error) {
	return s.Providers.Get(ctx, policy.ProviderScope(actor), id)
}

type UpdateProviderInput struct {
	Name        *string
	Service     *string
	Email       *string
	PhoneNumber *string
}

func (s *ProviderService) Update(ctx context.Context, actor policy.Actor, id int64, in UpdateProviderInput) (*entity.Provider, error) {
	p, err := s.Providers.Get(ctx, policy.ProviderScope(actor), id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Service != nil {
		p.Service = *in.Service
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.PhoneNumber != nil {
		p.PhoneNumber = in.PhoneNumber
	}
	if err := s.Providers.Update(ctx, p); err != nil {
		return nil, translateRepoErr(err)
	}
	_ = s.indexProvider(ctx, p)
	return p, nil
}

func (s *ProviderService) Delete(ctx context.Context, actor policy.Actor, id int64) error {
	if err := s.Providers.DeleteWithUser(ctx, policy.ProviderScope(actor), id); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("provider_id", id).Info("provider account deleted")
	}
	s.removeProviderDoc(ctx, id)
	return nil
}

// Search queries the provider directory index by name, service category or
// email. Returns an empty slice when search is not configured.
func (s *ProviderService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "service^2", "email"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *ProviderService) indexProvider(ctx context.Context, p *entity.Provider) error {
	if s.ES == nil || s.ESIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":      p.ID,
		"name":    p.Name,
		"service": p.Service,
		"email":   p.Email,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESIndex,
		DocumentID: strconv.FormatInt(p.ID, 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("provider_id", p.ID).Warn("provider index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"status": res.Status(), "provider_id": p.ID}).Warn("provider index response error")
	}
	return nil
}

func (s *ProviderService) removeProviderDoc(ctx context.Context, id int64) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: strconv.FormatInt(id, 10)}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("provider_id", id).Warn("provider index delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

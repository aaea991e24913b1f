package application

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pawcare/pawcare-api/internal/domain/access"
	"github.com/pawcare/pawcare-api/internal/domain/entity"
	repo "github.com/pawcare/pawcare-api/internal/domain/repository"
	"github.com/pawcare/pawcare-api/pkg/helpers"
)

// PetService implements pet CRUD with ownership scoping, photo upload to
// object storage, and best-effort search indexing. GCS and ES are optional;
// a nil client disables the corresponding feature.
type PetService struct {
	Pets        repo.PetRepository
	GCS         *storage.Client
	GCSBucket   string
	ES          *elasticsearch.Client
	ESPetsIndex string
	Logger      *logrus.Logger
}

func NewPetService(pets repo.PetRepository, gcs *storage.Client, gcsBucket string, es *elasticsearch.Client, esPetsIndex string, logger *logrus.Logger) *PetService {
	return &PetService{Pets: pets, GCS: gcs, GCSBucket: gcsBucket, ES: es, ESPetsIndex: esPetsIndex, Logger: logger}
}

type PetInput struct {
	Name    string
	Species string
	Breed   string
	Age     *int
	Weight  *float64
}

// Create persists a pet owned by the acting identity. Ownership is never
// taken from the input.
func (s *PetService) Create(ctx context.Context, actor *entity.User, in PetInput) (*entity.Pet, error) {
	p := &entity.Pet{
		Name:    helpers.TitleCase(strings.TrimSpace(in.Name)),
		Species: helpers.TitleCase(strings.TrimSpace(in.Species)),
		Breed:   strings.TrimSpace(in.Breed),
		Age:     in.Age,
		Weight:  in.Weight,
		OwnerID: actor.ID,
	}
	if !entity.ValidSpecies(p.Species) {
		return nil, ErrInvalidSpecies
	}
	if err := s.Pets.Create(ctx, p); err != nil {
		return nil, err
	}
	s.indexPet(ctx, p)
	return p, nil
}

// Get returns the pet when the actor is its owner or an admin.
func (s *PetService) Get(ctx context.Context, actor *entity.User, id string) (*entity.Pet, error) {
	p, err := s.Pets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanAccessPet(actor, p) {
		return nil, ErrAccessDenied
	}
	return p, nil
}

// List returns all pets for admins and only owned pets for everyone else.
func (s *PetService) List(ctx context.Context, actor *entity.User) ([]entity.Pet, error) {
	if actor.Role == entity.RoleAdmin {
		return s.Pets.ListAll(ctx)
	}
	return s.Pets.ListByOwner(ctx, actor.ID)
}

// Update replaces the mutable fields, re-normalizing name and species.
func (s *PetService) Update(ctx context.Context, actor *entity.User, id string, in PetInput) (*entity.Pet, error) {
	p, err := s.Pets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanAccessPet(actor, p) {
		return nil, ErrAccessDenied
	}

	p.Name = helpers.TitleCase(strings.TrimSpace(in.Name))
	p.Species = helpers.TitleCase(strings.TrimSpace(in.Species))
	p.Breed = strings.TrimSpace(in.Breed)
	p.Age = in.Age
	p.Weight = in.Weight
	if !entity.ValidSpecies(p.Species) {
		return nil, ErrInvalidSpecies
	}

	if err := s.Pets.Update(ctx, p); err != nil {
		return nil, err
	}
	s.indexPet(ctx, p)
	return p, nil
}

// Delete removes the pet permanently. No tombstone is kept.
func (s *PetService) Delete(ctx context.Context, actor *entity.User, id string) error {
	p, err := s.Pets.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanAccessPet(actor, p) {
		return ErrAccessDenied
	}
	if err := s.Pets.Delete(ctx, id); err != nil {
		return err
	}
	s.deleteFromIndex(ctx, id)
	return nil
}

// UploadPhoto stores the photo in the bucket and records its public URL.
func (s *PetService) UploadPhoto(ctx context.Context, actor *entity.User, id string, r io.Reader, filename, contentType string) (string, error) {
	p, err := s.Pets.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !access.CanAccessPet(actor, p) {
		return "", ErrAccessDenied
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("object storage not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("pets", p.ID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}

	p.PhotoURL = url
	if err := s.Pets.Update(ctx, p); err != nil {
		return "", err
	}
	s.indexPet(ctx, p)
	return url, nil
}

// Search queries the pet index. Non-admin results are filtered to the
// actor's own pets; admins search across everything.
func (s *PetService) Search(ctx context.Context, actor *entity.User, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESPetsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}

	must := []map[string]any{{
		"multi_match": map[string]any{
			"query":  q,
			"fields": []string{"name^2", "species", "breed"},
		},
	}}
	boolQuery := map[string]any{"must": must}
	if actor.Role != entity.RoleAdmin {
		boolQuery["filter"] = []map[string]any{{
			"term": map[string]any{"owner_id": actor.ID},
		}}
	}
	query := map[string]any{
		"query": map[string]any{"bool": boolQuery},
		"size":  size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESPetsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
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

// indexPet keeps the search index in sync; indexing failures are logged
// and never fail the write.
func (s *PetService) indexPet(ctx context.Context, p *entity.Pet) {
	if s.ES == nil || s.ESPetsIndex == "" {
		return
	}
	doc := map[string]any{
		"id":       p.ID,
		"name":     p.Name,
		"species":  p.Species,
		"breed":    p.Breed,
		"owner_id": p.OwnerID,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESPetsIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("pet_id", p.ID).Warn("es index failed")
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("pet_id", p.ID).Warn("es index response error")
	}
}

func (s *PetService) deleteFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESPetsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESPetsIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("pet_id", id).Warn("es delete failed")
		return
	}
	_ = res.Body.Close()
}

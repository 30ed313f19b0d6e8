package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/section"
	"github.com/fekuna/omnipos-storefront-service/internal/site"
	"github.com/fekuna/omnipos-storefront-service/internal/site/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/tenant/tenanttest"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	storeID string
	draft   bool // Products only
	schema  section.Schema
	working section.Schema
}

// memRepo keeps owners keyed by "<kind>:<id>"; the home owner is "home:<store>".
type memRepo struct {
	docs         map[string]*doc
	failProducts bool
}

func key(kind dto.OwnerKind, id string) string { return string(kind) + ":" + id }

func (m *memRepo) snapshot() map[string]*doc {
	out := make(map[string]*doc, len(m.docs))
	for k, d := range m.docs {
		cp := *d
		cp.schema = d.schema.Clone()
		cp.working = d.working.Clone()
		out[k] = &cp
	}
	return out
}

func (m *memRepo) RunInTx(ctx context.Context, fn func(ctx context.Context, tx site.Repository) error) error {
	before := m.snapshot()
	if err := fn(ctx, m); err != nil {
		m.docs = before
		return err
	}
	return nil
}

func (m *memRepo) find(storeID string, owner dto.Owner) (*doc, error) {
	k := key(owner.Kind, owner.ID)
	if owner.Kind == dto.OwnerHome {
		k = key(owner.Kind, storeID)
	}
	d, ok := m.docs[k]
	if !ok || d.storeID != storeID {
		return nil, apperror.NotFound("%s %s not found", owner.Kind, owner.ID)
	}
	return d, nil
}

func (m *memRepo) GetDraft(_ context.Context, storeID string, owner dto.Owner) (section.Schema, error) {
	d, err := m.find(storeID, owner)
	if err != nil {
		return nil, err
	}
	return d.working.Clone(), nil
}

func (m *memRepo) SaveDraft(_ context.Context, storeID string, owner dto.Owner, draft section.Schema) error {
	d, err := m.find(storeID, owner)
	if err != nil {
		return err
	}
	d.working = draft
	return nil
}

func (m *memRepo) publish(storeID string, kind dto.OwnerKind, skipDraft bool) int64 {
	var n int64
	for k, d := range m.docs {
		if d.storeID != storeID || !strings.HasPrefix(k, string(kind)+":") || (skipDraft && d.draft) {
			continue
		}
		d.schema = d.working.Clone()
		n++
	}
	return n
}

func (m *memRepo) PublishStore(_ context.Context, storeID string) error {
	if m.publish(storeID, dto.OwnerHome, false) == 0 {
		return apperror.NotFound("store %s not found", storeID)
	}
	return nil
}

func (m *memRepo) PublishPages(_ context.Context, storeID string) (int64, error) {
	return m.publish(storeID, dto.OwnerPage, false), nil
}

func (m *memRepo) PublishProducts(_ context.Context, storeID string) (int64, error) {
	if m.failProducts {
		return 0, errors.New("disk full")
	}
	return m.publish(storeID, dto.OwnerProduct, true), nil
}

func build(t *testing.T, st section.SectionType) section.Section {
	t.Helper()
	sec, err := section.Build(st)
	require.NoError(t, err)
	return sec
}

func seeded(t *testing.T) *memRepo {
	return &memRepo{docs: map[string]*doc{
		key(dto.OwnerHome, "s1"):        {storeID: "s1", working: section.Schema{build(t, section.TypeText)}},
		key(dto.OwnerPage, "about"):     {storeID: "s1", working: section.Schema{build(t, section.TypeBio)}},
		key(dto.OwnerProduct, "live"):   {storeID: "s1", working: section.Schema{build(t, section.TypeFAQ)}},
		key(dto.OwnerProduct, "wip"):    {storeID: "s1", draft: true, working: section.Schema{build(t, section.TypeColumns)}},
		key(dto.OwnerHome, "s2"):        {storeID: "s2"},
		key(dto.OwnerPage, "elsewhere"): {storeID: "s2"},
	}}
}

func newUseCase(repo site.Repository) site.UseCase {
	return NewSiteUseCase(repo, tenanttest.NewStoreLock(), logger.NewNop())
}

var home = dto.Owner{Kind: dto.OwnerHome}

func TestAddSectionOnlyTouchesDraft(t *testing.T) {
	repo := seeded(t)
	uc := newUseCase(repo)

	sec, err := uc.AddSection(context.Background(), &dto.AddSectionInput{StoreID: "s1", Owner: home, SectionType: "NEWSLETTER"})
	require.NoError(t, err)
	assert.Equal(t, section.TypeNewsletter, sec.SectionType())

	d := repo.docs[key(dto.OwnerHome, "s1")]
	require.Len(t, d.working, 2)
	assert.Equal(t, sec.SectionID(), d.working[1].SectionID())
	assert.Empty(t, d.schema)

	_, err = uc.AddSection(context.Background(), &dto.AddSectionInput{StoreID: "s1", Owner: home, SectionType: "HERO"})
	assert.True(t, apperror.IsValidation(err))
}

func TestOwnerResolutionIsTenantScoped(t *testing.T) {
	uc := newUseCase(seeded(t))

	_, err := uc.GetDraft(context.Background(), "s1", dto.Owner{Kind: dto.OwnerPage, ID: "elsewhere"})
	assert.True(t, apperror.IsNotFound(err))

	_, err = uc.AddSection(context.Background(), &dto.AddSectionInput{StoreID: "s1", Owner: dto.Owner{Kind: dto.OwnerProduct, ID: "nope"}, SectionType: "TEXT"})
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateSection(t *testing.T) {
	repo := seeded(t)
	uc := newUseCase(repo)
	owner := dto.Owner{Kind: dto.OwnerPage, ID: "about"}

	bio := repo.docs[key(dto.OwnerPage, "about")].working[0].(*section.BioSection)
	edited := *bio
	edited.Title.Value = "About us"
	raw, err := json.Marshal(&edited)
	require.NoError(t, err)

	got, err := uc.UpdateSection(context.Background(), &dto.UpdateSectionInput{StoreID: "s1", Owner: owner, Document: raw})
	require.NoError(t, err)
	assert.Equal(t, bio.SectionID(), got.SectionID())

	draft, err := uc.GetDraft(context.Background(), "s1", owner)
	require.NoError(t, err)
	require.Len(t, draft, 1)
	assert.Equal(t, "About us", draft[0].(*section.BioSection).Title.Value)

	t.Run("unknown_id", func(t *testing.T) {
		other := build(t, section.TypeBio)
		raw, err := json.Marshal(other)
		require.NoError(t, err)
		_, err = uc.UpdateSection(context.Background(), &dto.UpdateSectionInput{StoreID: "s1", Owner: owner, Document: raw})
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("wrong_attribute_type", func(t *testing.T) {
		bad := edited
		bad.Title.Type = section.AttrImage
		raw, err := json.Marshal(&bad)
		require.NoError(t, err)
		_, err = uc.UpdateSection(context.Background(), &dto.UpdateSectionInput{StoreID: "s1", Owner: owner, Document: raw})
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("type_change", func(t *testing.T) {
		news := build(t, section.TypeNewsletter).(*section.NewsletterSection)
		news.ID = bio.SectionID()
		raw, err := json.Marshal(news)
		require.NoError(t, err)
		_, err = uc.UpdateSection(context.Background(), &dto.UpdateSectionInput{StoreID: "s1", Owner: owner, Document: raw})
		assert.True(t, apperror.IsValidation(err))

		draft, err := uc.GetDraft(context.Background(), "s1", owner)
		require.NoError(t, err)
		assert.Equal(t, section.TypeBio, draft[0].SectionType())
	})
}

func TestDeleteAndMoveSection(t *testing.T) {
	repo := seeded(t)
	uc := newUseCase(repo)

	a, err := uc.AddSection(context.Background(), &dto.AddSectionInput{StoreID: "s1", Owner: home, SectionType: "FAQ"})
	require.NoError(t, err)
	b, err := uc.AddSection(context.Background(), &dto.AddSectionInput{StoreID: "s1", Owner: home, SectionType: "PRODUCTS"})
	require.NoError(t, err)
	first := repo.docs[key(dto.OwnerHome, "s1")].working[0]

	moved, err := uc.MoveSection(context.Background(), &dto.MoveSectionInput{StoreID: "s1", Owner: home, SourceIndex: 2, DestinationIndex: 0})
	require.NoError(t, err)
	assert.Equal(t, []string{b.SectionID(), first.SectionID(), a.SectionID()}, ids(moved))

	_, err = uc.MoveSection(context.Background(), &dto.MoveSectionInput{StoreID: "s1", Owner: home, SourceIndex: 3, DestinationIndex: 0})
	assert.True(t, apperror.IsValidation(err))

	removed, err := uc.DeleteSection(context.Background(), &dto.DeleteSectionInput{StoreID: "s1", Owner: home, SectionID: first.SectionID()})
	require.NoError(t, err)
	assert.Equal(t, first.SectionID(), removed.SectionID())
	assert.Equal(t, []string{b.SectionID(), a.SectionID()}, ids(repo.docs[key(dto.OwnerHome, "s1")].working))

	_, err = uc.DeleteSection(context.Background(), &dto.DeleteSectionInput{StoreID: "s1", Owner: home, SectionID: first.SectionID()})
	assert.True(t, apperror.IsNotFound(err))
}

func ids(s section.Schema) []string {
	out := make([]string, len(s))
	for i, sec := range s {
		out[i] = sec.SectionID()
	}
	return out
}

func TestPublish(t *testing.T) {
	repo := seeded(t)
	uc := newUseCase(repo)

	res, err := uc.Publish(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Pages)
	assert.Equal(t, int64(1), res.Products)

	for _, k := range []string{key(dto.OwnerHome, "s1"), key(dto.OwnerPage, "about"), key(dto.OwnerProduct, "live")} {
		d := repo.docs[k]
		assert.Equal(t, ids(d.working), ids(d.schema), k)
	}
	assert.Empty(t, repo.docs[key(dto.OwnerProduct, "wip")].schema, "draft products keep their live schema")
	assert.Empty(t, repo.docs[key(dto.OwnerPage, "elsewhere")].schema)
}

func TestPublishIsAllOrNothing(t *testing.T) {
	repo := seeded(t)
	repo.failProducts = true
	uc := newUseCase(repo)

	_, err := uc.Publish(context.Background(), "s1")
	require.Error(t, err)
	for k, d := range repo.docs {
		assert.Empty(t, d.schema, k)
	}
}

func TestPublishUnknownStore(t *testing.T) {
	_, err := newUseCase(seeded(t)).Publish(context.Background(), "s9")
	assert.True(t, apperror.IsNotFound(err))
}

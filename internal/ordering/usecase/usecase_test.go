package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/fekuna/omnipos-storefront-service/internal/apperror"
	"github.com/fekuna/omnipos-storefront-service/internal/model"
	"github.com/fekuna/omnipos-storefront-service/internal/ordering"
	"github.com/fekuna/omnipos-storefront-service/internal/ordering/dto"
	"github.com/fekuna/omnipos-storefront-service/internal/tenant/tenanttest"
	"github.com/fekuna/omnipos-storefront-service/pkg/logger"
	"github.com/stretchr/testify/require"
)

type row struct {
	kind        ordering.Kind
	storeID     string
	productID   string
	parentID    *string
	contentType string
	order       int
}

// memRepo is an in-memory ordering.Repository. RunInTx restores the previous
// state when fn fails.
type memRepo struct {
	rows      map[string]*row
	writes    int
	failWrite bool
}

func newMemRepo() *memRepo { return &memRepo{rows: map[string]*row{}} }

func (m *memRepo) snapshot() map[string]*row {
	out := make(map[string]*row, len(m.rows))
	for id, r := range m.rows {
		cp := *r
		out[id] = &cp
	}
	return out
}

func (m *memRepo) RunInTx(ctx context.Context, fn func(ctx context.Context, tx ordering.Repository) error) error {
	before := m.snapshot()
	if err := fn(ctx, m); err != nil {
		m.rows = before
		return err
	}
	return nil
}

func (m *memRepo) FindEntity(_ context.Context, kind ordering.Kind, storeID, id string) (*ordering.Entity, error) {
	r, ok := m.rows[id]
	if !ok || r.kind != kind || r.storeID != storeID {
		return nil, apperror.NotFound("%s %s not found", kind, id)
	}
	return &ordering.Entity{ID: id, Order: r.order, ContentType: r.contentType, Group: m.groupOf(r)}, nil
}

func (m *memRepo) groupOf(r *row) ordering.Group {
	g := ordering.Group{Kind: r.kind, StoreID: r.storeID}
	if r.kind == ordering.KindContentItem {
		g.ProductID = r.productID
		g.ParentID = r.parentID
	}
	return g
}

func (m *memRepo) ListGroup(_ context.Context, g ordering.Group, excludeID string) ([]ordering.Item, error) {
	out := []ordering.Item{}
	for id, r := range m.rows {
		if id == excludeID || !m.groupOf(r).Equal(g) {
			continue
		}
		out = append(out, ordering.Item{ID: id, Order: r.order})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *memRepo) SetParent(_ context.Context, id string, parentID *string) error {
	m.rows[id].parentID = parentID
	return nil
}

func (m *memRepo) UpdateOrders(_ context.Context, _ ordering.Kind, items []ordering.Item) error {
	for _, it := range items {
		if m.failWrite {
			return errors.New("write failed")
		}
		m.rows[it.ID].order = it.Order
		m.writes++
	}
	return nil
}

func (m *memRepo) Delete(_ context.Context, _ ordering.Kind, id string) error {
	delete(m.rows, id)
	return nil
}

func (m *memRepo) orders(ids ...string) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = m.rows[id].order
	}
	return out
}

func newUseCase(repo ordering.Repository) ordering.UseCase {
	return NewOrderingUseCase(repo, tenanttest.NewStoreLock(), logger.NewNop())
}

func ptr(s string) *string { return &s }

func seedProducts(repo *memRepo, ids ...string) {
	for i, id := range ids {
		repo.rows[id] = &row{kind: ordering.KindProduct, storeID: "store", order: i + 1}
	}
}

func TestMoveProductToFront(t *testing.T) {
	repo := newMemRepo()
	seedProducts(repo, "A", "B", "C")
	uc := newUseCase(repo)

	res, err := uc.Move(context.Background(), &dto.MoveInput{StoreID: "store", Kind: "product", ID: "C", Position: 1})
	require.NoError(t, err)
	require.Equal(t, 1, res.Position)
	require.Equal(t, []dto.Position{{ID: "C", Order: 1}, {ID: "A", Order: 2}, {ID: "B", Order: 3}}, res.Items)
	require.Equal(t, []int{2, 3, 1}, repo.orders("A", "B", "C"))
}

func TestMoveToSamePositionWritesNothing(t *testing.T) {
	repo := newMemRepo()
	seedProducts(repo, "A", "B", "C")
	uc := newUseCase(repo)

	_, err := uc.Move(context.Background(), &dto.MoveInput{StoreID: "store", Kind: "product", ID: "B", Position: 2})
	require.NoError(t, err)
	require.Zero(t, repo.writes)
	require.Equal(t, []int{1, 2, 3}, repo.orders("A", "B", "C"))
}

func TestMoveClampsPosition(t *testing.T) {
	repo := newMemRepo()
	seedProducts(repo, "A", "B", "C")
	uc := newUseCase(repo)

	res, err := uc.Move(context.Background(), &dto.MoveInput{StoreID: "store", Kind: "product", ID: "A", Position: 42})
	require.NoError(t, err)
	require.Equal(t, 3, res.Position)
	require.Equal(t, []int{3, 1, 2}, repo.orders("A", "B", "C"))

	res, err = uc.Move(context.Background(), &dto.MoveInput{StoreID: "store", Kind: "product", ID: "A", Position: 0})
	require.NoError(t, err)
	require.Equal(t, 1, res.Position)
	require.Equal(t, []int{1, 2, 3}, repo.orders("A", "B", "C"))
}

func TestMoveNotFound(t *testing.T) {
	repo := newMemRepo()
	seedProducts(repo, "A")
	uc := newUseCase(repo)

	_, err := uc.Move(context.Background(), &dto.MoveInput{StoreID: "other", Kind: "product", ID: "A", Position: 1})
	require.True(t, apperror.IsNotFound(err))

	_, err = uc.Move(context.Background(), &dto.MoveInput{StoreID: "store", Kind: "category", ID: "A", Position: 1})
	require.True(t, apperror.IsNotFound(err))
}

func TestMoveRejectsBadInput(t *testing.T) {
	uc := newUseCase(newMemRepo())

	_, err := uc.Move(context.Background(), &dto.MoveInput{StoreID: "store", Kind: "page", ID: "A", Position: 1})
	require.True(t, apperror.IsValidation(err))

	_, err = uc.Move(context.Background(), &dto.MoveInput{StoreID: "store", Kind: "product", ID: "A", Position: 1, ParentSet: true, ParentID: ptr("x")})
	require.True(t, apperror.IsValidation(err))
}

func seedCourse(repo *memRepo) {
	add := func(id string, parent *string, ct string, order int) {
		repo.rows[id] = &row{kind: ordering.KindContentItem, storeID: "store", productID: "course", parentID: parent, contentType: ct, order: order}
	}
	add("S1", nil, model.ContentTypeSection, 1)
	add("S2", nil, model.ContentTypeSection, 2)
	add("W", ptr("S1"), model.ContentTypeText, 1)
	add("X", ptr("S1"), model.ContentTypeVideo, 2)
}

func TestMoveContentItemAcrossSections(t *testing.T) {
	repo := newMemRepo()
	seedCourse(repo)
	uc := newUseCase(repo)

	res, err := uc.Move(context.Background(), &dto.MoveInput{
		StoreID: "store", Kind: "content_item", ID: "X", Position: 1, ParentSet: true, ParentID: ptr("S2"),
	})
	require.NoError(t, err)
	require.Equal(t, []dto.Position{{ID: "X", Order: 1}}, res.Items)
	require.Equal(t, "S2", *repo.rows["X"].parentID)
	require.Equal(t, 1, repo.rows["W"].order)
}

func TestMoveContentItemOutOfMiddleCompactsOrigin(t *testing.T) {
	repo := newMemRepo()
	seedCourse(repo)
	repo.rows["Y"] = &row{kind: ordering.KindContentItem, storeID: "store", productID: "course", parentID: ptr("S1"), contentType: model.ContentTypeText, order: 3}
	uc := newUseCase(repo)

	_, err := uc.Move(context.Background(), &dto.MoveInput{
		StoreID: "store", Kind: "content_item", ID: "W", Position: 5, ParentSet: true, ParentID: ptr("S2"),
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, repo.orders("X", "Y"))
	require.Equal(t, 1, repo.rows["W"].order)
}

func TestMoveContentItemToTopLevel(t *testing.T) {
	repo := newMemRepo()
	seedCourse(repo)
	uc := newUseCase(repo)

	_, err := uc.Move(context.Background(), &dto.MoveInput{
		StoreID: "store", Kind: "content_item", ID: "W", Position: 2, ParentSet: true, ParentID: nil,
	})
	require.NoError(t, err)
	require.Nil(t, repo.rows["W"].parentID)
	require.Equal(t, []int{1, 2, 3}, repo.orders("S1", "W", "S2"))
	require.Equal(t, 1, repo.rows["X"].order)
}

func TestMoveContentItemKeepsParentWhenUnset(t *testing.T) {
	repo := newMemRepo()
	seedCourse(repo)
	uc := newUseCase(repo)

	_, err := uc.Move(context.Background(), &dto.MoveInput{StoreID: "store", Kind: "content_item", ID: "X", Position: 1})
	require.NoError(t, err)
	require.Equal(t, "S1", *repo.rows["X"].parentID)
	require.Equal(t, []int{2, 1}, repo.orders("W", "X"))
}

func TestMoveContentItemParentRules(t *testing.T) {
	cases := []struct {
		name   string
		id     string
		parent string
		check  func(error) bool
	}{
		{"self", "S1", "S1", apperror.IsValidation},
		{"nest_section", "S1", "S2", apperror.IsValidation},
		{"parent_not_section", "W", "X", apperror.IsValidation},
		{"parent_missing", "W", "nope", apperror.IsNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemRepo()
			seedCourse(repo)
			before := repo.snapshot()
			uc := newUseCase(repo)

			_, err := uc.Move(context.Background(), &dto.MoveInput{
				StoreID: "store", Kind: "content_item", ID: tc.id, Position: 1, ParentSet: true, ParentID: ptr(tc.parent),
			})
			require.True(t, tc.check(err), "got %v", err)
			require.Equal(t, before, repo.rows)
		})
	}
}

func TestMoveRollsBackOnWriteFailure(t *testing.T) {
	repo := newMemRepo()
	seedCourse(repo)
	repo.failWrite = true
	uc := newUseCase(repo)

	_, err := uc.Move(context.Background(), &dto.MoveInput{
		StoreID: "store", Kind: "content_item", ID: "X", Position: 1, ParentSet: true, ParentID: ptr("S2"),
	})
	require.Error(t, err)
	require.Equal(t, "S1", *repo.rows["X"].parentID)
	require.Equal(t, 2, repo.rows["X"].order)
}

func TestRemoveCompactsGroup(t *testing.T) {
	repo := newMemRepo()
	seedProducts(repo, "A", "B", "C", "D")
	uc := newUseCase(repo)

	require.NoError(t, uc.Remove(context.Background(), ordering.KindProduct, "store", "B"))
	require.NotContains(t, repo.rows, "B")
	require.Equal(t, []int{1, 2, 3}, repo.orders("A", "C", "D"))

	err := uc.Remove(context.Background(), ordering.KindProduct, "store", "B")
	require.True(t, apperror.IsNotFound(err))
}

func TestCompact(t *testing.T) {
	repo := newMemRepo()
	seedProducts(repo, "A", "B", "C")
	repo.rows["B"].order = 7
	repo.rows["C"].order = 9
	uc := newUseCase(repo)

	g := ordering.Group{Kind: ordering.KindProduct, StoreID: "store"}
	require.NoError(t, uc.Compact(context.Background(), g))
	require.Equal(t, []int{1, 2, 3}, repo.orders("A", "B", "C"))

	writes := repo.writes
	require.NoError(t, uc.Compact(context.Background(), g))
	require.Equal(t, writes, repo.writes)
}

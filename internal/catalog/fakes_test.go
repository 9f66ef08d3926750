package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"catalog/internal/events"
	"catalog/internal/models"
	"catalog/internal/store"
)

// memDB is an in-memory catalog with the same constraint behaviour as the
// PostgreSQL schema: unique brand names, unique (name, parent) categories,
// unique item slugs, restricted parent deletes and cascading item deletes.
type memDB struct {
	mu             sync.Mutex
	brands         map[int]string
	categories     map[int]models.PathNode
	items          map[string]models.ItemRecord
	nextBrandID    int
	nextCategoryID int

	// existsHook runs inside every existence check, outside the lock.
	existsHook func()
	// writeHook runs at the start of every item column write, outside the
	// lock. It is cleared before it runs, so it fires once.
	writeHook func()
}

func newMemDB() *memDB {
	return &memDB{
		brands:     map[int]string{},
		categories: map[int]models.PathNode{},
		items:      map[string]models.ItemRecord{},
	}
}

func (m *memDB) hook() {
	if m.existsHook != nil {
		m.existsHook()
	}
}

func (m *memDB) beforeWrite() {
	if h := m.writeHook; h != nil {
		m.writeHook = nil
		h()
	}
}

func duplicate(op, constraint string) error {
	return fmt.Errorf("%s: %w", op, &store.ConstraintError{Kind: store.ErrDuplicate, Constraint: constraint, Err: errors.New("unique violation")})
}

func foreignKey(op, constraint string) error {
	return fmt.Errorf("%s: %w", op, &store.ConstraintError{Kind: store.ErrForeignKey, Constraint: constraint, Err: errors.New("foreign key violation")})
}

func notFound(op string) error {
	return fmt.Errorf("%s: %w", op, store.ErrNotFound)
}

// --- brands ---

type memBrands struct{ db *memDB }

func (r memBrands) List(ctx context.Context) ([]*models.Brand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	ids := make([]int, 0, len(r.db.brands))
	for id := range r.db.brands {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := []*models.Brand{}
	for _, id := range ids {
		out = append(out, models.RestoreBrand(id, r.db.brands[id]))
	}
	return out, nil
}

func (r memBrands) FindByID(ctx context.Context, id int) (*models.Brand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	name, ok := r.db.brands[id]
	if !ok {
		return nil, nil
	}
	return models.RestoreBrand(id, name), nil
}

func (r memBrands) Exists(ctx context.Context, id int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	_, ok := r.db.brands[id]
	return ok, nil
}

func (r memBrands) ExistsByName(ctx context.Context, name string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.db.hook()
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, n := range r.db.brands {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

func (r memBrands) Create(ctx context.Context, b *models.Brand) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, n := range r.db.brands {
		if n == b.Name() {
			return duplicate("create brand", "catalog_brands_brand_key")
		}
	}
	r.db.nextBrandID++
	r.db.brands[r.db.nextBrandID] = b.Name()
	b.Assign(r.db.nextBrandID)
	return nil
}

func (r memBrands) Update(ctx context.Context, b *models.Brand) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.brands[b.ID()]; !ok {
		return notFound("update brand")
	}
	for id, n := range r.db.brands {
		if id != b.ID() && n == b.Name() {
			return duplicate("update brand", "catalog_brands_brand_key")
		}
	}
	r.db.brands[b.ID()] = b.Name()
	return nil
}

func (r memBrands) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.brands[id]; !ok {
		return notFound("delete brand")
	}
	delete(r.db.brands, id)
	for slug, it := range r.db.items {
		if it.BrandID == id {
			delete(r.db.items, slug)
		}
	}
	return nil
}

// --- categories ---

type memCategories struct{ db *memDB }

func sameParent(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (r memCategories) restore(id int) (*models.Category, error) {
	n := r.db.categories[id]
	path, err := models.CategoryPath(id, models.NodeIndex(r.db.categories))
	if err != nil {
		return nil, err
	}
	return models.RestoreCategory(n.ID, n.Name, n.ParentID).WithPath(path), nil
}

func (r memCategories) List(ctx context.Context) ([]*models.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	ids := make([]int, 0, len(r.db.categories))
	for id := range r.db.categories {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := []*models.Category{}
	for _, id := range ids {
		c, err := r.restore(id)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r memCategories) FindByID(ctx context.Context, id int) (*models.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.categories[id]; !ok {
		return nil, nil
	}
	return r.restore(id)
}

func (r memCategories) Exists(ctx context.Context, id int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	_, ok := r.db.categories[id]
	return ok, nil
}

func (r memCategories) ExistsByNameAndParent(ctx context.Context, name string, parentID *int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.db.hook()
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, n := range r.db.categories {
		if n.Name == name && sameParent(n.ParentID, parentID) {
			return true, nil
		}
	}
	return false, nil
}

func (r memCategories) HasChildren(ctx context.Context, id int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, n := range r.db.categories {
		if n.ParentID != nil && *n.ParentID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r memCategories) Create(ctx context.Context, c *models.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	parent := c.ParentID()
	if parent != nil {
		if _, ok := r.db.categories[*parent]; !ok {
			return foreignKey("create category", "catalog_categories_parent_id_fkey")
		}
	}
	for _, n := range r.db.categories {
		if n.Name == c.Name() && sameParent(n.ParentID, parent) {
			return duplicate("create category", "uq_catalog_categories_category_parent")
		}
	}
	r.db.nextCategoryID++
	r.db.categories[r.db.nextCategoryID] = models.PathNode{ID: r.db.nextCategoryID, Name: c.Name(), ParentID: parent}
	c.Assign(r.db.nextCategoryID)
	return nil
}

func (r memCategories) Update(ctx context.Context, c *models.Category) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	cur, ok := r.db.categories[c.ID()]
	if !ok {
		return notFound("update category")
	}
	for id, n := range r.db.categories {
		if id != c.ID() && n.Name == c.Name() && sameParent(n.ParentID, cur.ParentID) {
			return duplicate("update category", "uq_catalog_categories_category_parent")
		}
	}
	cur.Name = c.Name()
	r.db.categories[c.ID()] = cur
	return nil
}

func (r memCategories) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.categories[id]; !ok {
		return notFound("delete category")
	}
	for _, n := range r.db.categories {
		if n.ParentID != nil && *n.ParentID == id {
			return foreignKey("delete category", "catalog_categories_parent_id_fkey")
		}
	}
	delete(r.db.categories, id)
	for slug, it := range r.db.items {
		if it.CategoryID == id {
			delete(r.db.items, slug)
		}
	}
	return nil
}

// --- items ---

type memItems struct{ db *memDB }

func (r memItems) restore(rec models.ItemRecord) *models.Item {
	rec.BrandName = r.db.brands[rec.BrandID]
	rec.CategoryName = r.db.categories[rec.CategoryID].Name
	rec.Medias = append(models.MediaList{}, rec.Medias...)
	return models.RestoreItem(rec)
}

func record(item *models.Item) models.ItemRecord {
	return models.ItemRecord{
		Slug:              item.Slug(),
		Name:              item.Name(),
		Description:       item.Description(),
		Price:             item.Price(),
		AvailableStock:    item.AvailableStock(),
		MaxStockThreshold: item.MaxStockThreshold(),
		BrandID:           item.BrandID(),
		CategoryID:        item.CategoryID(),
		Medias:            item.Medias(),
	}
}

func (r memItems) checkRefs(op string, item *models.Item) error {
	if _, ok := r.db.brands[item.BrandID()]; !ok {
		return foreignKey(op, "catalog_items_catalog_brand_id_fkey")
	}
	if _, ok := r.db.categories[item.CategoryID()]; !ok {
		return foreignKey(op, "catalog_items_catalog_category_id_fkey")
	}
	return nil
}

func (r memItems) List(ctx context.Context) ([]*models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := []*models.Item{}
	for _, rec := range r.db.items {
		out = append(out, r.restore(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (r memItems) FindBySlug(ctx context.Context, slug string) (*models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	rec, ok := r.db.items[slug]
	if !ok {
		return nil, nil
	}
	return r.restore(rec), nil
}

func (r memItems) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.db.hook()
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	_, ok := r.db.items[slug]
	return ok, nil
}

func (r memItems) Create(ctx context.Context, item *models.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.items[item.Slug()]; ok {
		return duplicate("create item", "catalog_items_pkey")
	}
	if err := r.checkRefs("create item", item); err != nil {
		return err
	}
	r.db.items[item.Slug()] = record(item)
	return nil
}

func (r memItems) UpdateDetails(ctx context.Context, item *models.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.beforeWrite()
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	rec, ok := r.db.items[item.Slug()]
	if !ok {
		return notFound("update item details")
	}
	if err := r.checkRefs("update item details", item); err != nil {
		return err
	}
	rec.Description = item.Description()
	rec.BrandID = item.BrandID()
	rec.CategoryID = item.CategoryID()
	r.db.items[item.Slug()] = rec
	return nil
}

func (r memItems) UpdateMaxStockThreshold(ctx context.Context, slug string, value int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.beforeWrite()
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	rec, ok := r.db.items[slug]
	if !ok {
		return notFound("update max stock threshold")
	}
	rec.MaxStockThreshold = value
	r.db.items[slug] = rec
	return nil
}

func (r memItems) AppendMedia(ctx context.Context, slug string, m models.Media) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.beforeWrite()
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	rec, ok := r.db.items[slug]
	if !ok {
		return notFound("append item media")
	}
	rec.Medias = append(append(models.MediaList{}, rec.Medias...), m)
	r.db.items[slug] = rec
	return nil
}

func (r memItems) Delete(ctx context.Context, slug string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.items[slug]; !ok {
		return notFound("delete item")
	}
	delete(r.db.items, slug)
	return nil
}

// --- collaborators ---

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Dispatch(e events.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, e)
}

func (d *recordingDispatcher) all() []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]events.Event(nil), d.events...)
}

type memMedia struct {
	mu        sync.Mutex
	objects   map[string][]byte
	uploadErr error
}

func newMemMedia() *memMedia { return &memMedia{objects: map[string][]byte{}} }

func (m *memMedia) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	if m.uploadErr != nil {
		return "", m.uploadErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = buf.Bytes()
	return "https://cdn.example.com/" + key, nil
}

func (m *memMedia) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memMedia) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// fixture bundles a service with its in-memory collaborators.
type fixture struct {
	svc        *Service
	db         *memDB
	dispatcher *recordingDispatcher
	media      *memMedia
}

func newFixture() *fixture {
	db := newMemDB()
	f := &fixture{db: db, dispatcher: &recordingDispatcher{}, media: newMemMedia()}
	f.svc = NewService(memBrands{db}, memCategories{db}, memItems{db}, f.dispatcher, f.media, "http://catalog.test/")
	return f
}

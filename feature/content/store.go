package content

import (
	"context"
	"fmt"
	"strconv"

	"content-validator/core/validation"

	"gorm.io/gorm"
)

// DefaultTablePrefix is the WordPress default table prefix.
const DefaultTablePrefix = "wp_"

// Store reads content from WordPress-shaped tables.
type Store struct {
	db      *gorm.DB
	prefix  string
	ignored map[string]struct{}
}

// NewStore creates a Store. Meta keys listed in ignoredMeta are never
// returned.
func NewStore(db *gorm.DB, prefix string, ignoredMeta []string) *Store {
	if prefix == "" {
		prefix = DefaultTablePrefix
	}
	ignored := make(map[string]struct{}, len(ignoredMeta))
	for _, k := range ignoredMeta {
		ignored[k] = struct{}{}
	}
	return &Store{db: db, prefix: prefix, ignored: ignored}
}

func (s *Store) table(name string) string {
	return s.prefix + name
}

// Counts implements Source.
func (s *Store) Counts(ctx context.Context, kind Kind) (validation.Counts, error) {
	switch kind {
	case KindPost:
		return s.postCounts(ctx)
	case KindTaxonomy:
		return s.termCounts(ctx)
	case KindUser:
		return s.userCounts(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Sample implements Source.
func (s *Store) Sample(ctx context.Context, kind Kind, n int) ([]validation.SampleRecord, error) {
	n = validation.ResolveSampleCount(n)
	switch kind {
	case KindPost:
		return s.posts(ctx, func(q *gorm.DB) *gorm.DB { return s.listedPosts(q).Limit(n) })
	case KindTaxonomy:
		ids, err := s.sampleTermIDs(ctx, n)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []validation.SampleRecord{}, nil
		}
		return s.terms(ctx, func(q *gorm.DB) *gorm.DB { return q.Where("t.term_id IN ?", ids) })
	case KindUser:
		return s.users(ctx, func(q *gorm.DB) *gorm.DB { return q.Limit(n) })
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// ByIDs implements Source.
func (s *Store) ByIDs(ctx context.Context, kind Kind, ids []string) ([]validation.SampleRecord, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	keys, err := parseIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return []validation.SampleRecord{}, nil
	}

	switch kind {
	case KindPost:
		return s.posts(ctx, func(q *gorm.DB) *gorm.DB { return q.Where("ID IN ?", keys) })
	case KindTaxonomy:
		return s.terms(ctx, func(q *gorm.DB) *gorm.DB { return q.Where("t.term_id IN ?", keys) })
	default:
		return s.users(ctx, func(q *gorm.DB) *gorm.DB { return q.Where("ID IN ?", keys) })
	}
}

// Relations implements Source.
func (s *Store) Relations(ctx context.Context, ids []string) (validation.Relations, error) {
	keys, err := parseIDs(ids)
	if err != nil {
		return nil, err
	}
	relations := validation.Relations{}
	if len(keys) == 0 {
		return relations, nil
	}

	var rows []struct {
		ObjectID int64
		Taxonomy string
		Slug     string
	}
	err = s.db.WithContext(ctx).
		Table(s.table(tableTermRelationships)+" AS tr").
		Select("tr.object_id, tt.taxonomy, t.slug").
		Joins("JOIN "+s.table(tableTermTaxonomy)+" AS tt ON tt.term_taxonomy_id = tr.term_taxonomy_id").
		Joins("JOIN "+s.table(tableTerms)+" AS t ON t.term_id = tt.term_id").
		Where("tr.object_id IN ?", keys).
		Order("tr.object_id, tt.taxonomy, t.slug").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read term relationships: %w", err)
	}

	for _, r := range rows {
		id := strconv.FormatInt(r.ObjectID, 10)
		if relations[id] == nil {
			relations[id] = validation.Meta{}
		}
		relations[id][r.Taxonomy] = append(relations[id][r.Taxonomy], r.Slug)
	}
	return relations, nil
}

// listedPosts excludes revisions and auto drafts.
func (s *Store) listedPosts(q *gorm.DB) *gorm.DB {
	return q.Where("post_type <> ? AND post_status <> ?", "revision", "auto-draft")
}

func (s *Store) postCounts(ctx context.Context) (validation.Counts, error) {
	var rows []struct {
		PostType   string
		PostStatus string
		Total      int
	}
	err := s.listedPosts(s.db.WithContext(ctx).Table(s.table(tablePosts))).
		Select("post_type, post_status, COUNT(*) AS total").
		Group("post_type, post_status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	counts := validation.Counts{}
	for _, r := range rows {
		if counts[r.PostType] == nil {
			counts[r.PostType] = map[string]int{}
		}
		counts[r.PostType][r.PostStatus] = r.Total
	}
	return counts, nil
}

func (s *Store) posts(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]validation.SampleRecord, error) {
	var rows []PostRow
	q := s.db.WithContext(ctx).Table(s.table(tablePosts)).Order("ID")
	if err := scope(q).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	meta, err := s.meta(ctx, tablePostMeta, "post_id", "meta_id", ids)
	if err != nil {
		return nil, err
	}

	records := make([]validation.SampleRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, validation.NewRecord(KindPost.IDField(), map[string]validation.Value{
			"ID":      validation.Int(r.ID),
			"title":   validation.String(r.PostTitle),
			"slug":    validation.String(r.PostName),
			"type":    validation.String(r.PostType),
			"status":  validation.String(r.PostStatus),
			"date":    validation.String(r.PostDate),
			"content": validation.String(r.PostContent),
			"excerpt": validation.String(r.PostExcerpt),
		}, metaFor(meta, r.ID)))
	}
	return records, nil
}

func (s *Store) termCounts(ctx context.Context) (validation.Counts, error) {
	var rows []struct {
		Taxonomy    string
		Terms       int
		Assignments int
	}
	err := s.db.WithContext(ctx).Table(s.table(tableTermTaxonomy)).
		Select("taxonomy, COUNT(*) AS terms, COALESCE(SUM(count), 0) AS assignments").
		Group("taxonomy").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count terms: %w", err)
	}

	counts := validation.Counts{}
	for _, r := range rows {
		counts[r.Taxonomy] = map[string]int{"terms": r.Terms, "assignments": r.Assignments}
	}
	return counts, nil
}

// sampleTermIDs picks the first n distinct terms that belong to a taxonomy.
// A term shared by several taxonomies counts once.
func (s *Store) sampleTermIDs(ctx context.Context, n int) ([]int64, error) {
	var ids []int64
	err := s.db.WithContext(ctx).
		Table(s.table(tableTerms)+" AS t").
		Joins("JOIN "+s.table(tableTermTaxonomy)+" AS tt ON tt.term_id = t.term_id").
		Order("t.term_id").
		Limit(n).
		Pluck("DISTINCT t.term_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sample terms: %w", err)
	}
	return ids, nil
}

func (s *Store) terms(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]validation.SampleRecord, error) {
	var rows []struct {
		TermID      int64
		Name        string
		Slug        string
		Taxonomy    string
		Description string
		Count       int64
	}
	q := s.db.WithContext(ctx).Table(s.table(tableTerms)+" AS t").
		Select("t.term_id, t.name, t.slug, tt.taxonomy, tt.description, tt.count").
		Joins("JOIN " + s.table(tableTermTaxonomy) + " AS tt ON tt.term_id = t.term_id").
		Order("t.term_id, tt.term_taxonomy_id")
	if err := scope(q).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read terms: %w", err)
	}

	// A term shared by several taxonomies keeps its first taxonomy.
	seen := make(map[int64]struct{}, len(rows))
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.TermID]; !ok {
			seen[r.TermID] = struct{}{}
			ids = append(ids, r.TermID)
		}
	}
	meta, err := s.meta(ctx, tableTermMeta, "term_id", "meta_id", ids)
	if err != nil {
		return nil, err
	}

	records := make([]validation.SampleRecord, 0, len(ids))
	emitted := make(map[int64]struct{}, len(ids))
	for _, r := range rows {
		if _, ok := emitted[r.TermID]; ok {
			continue
		}
		emitted[r.TermID] = struct{}{}
		records = append(records, validation.NewRecord(KindTaxonomy.IDField(), map[string]validation.Value{
			"term_id":     validation.Int(r.TermID),
			"name":        validation.String(r.Name),
			"slug":        validation.String(r.Slug),
			"taxonomy":    validation.String(r.Taxonomy),
			"description": validation.String(r.Description),
			"count":       validation.Int(r.Count),
		}, metaFor(meta, r.TermID)))
	}
	return records, nil
}

func (s *Store) userCounts(ctx context.Context) (validation.Counts, error) {
	var total int64
	if err := s.db.WithContext(ctx).Table(s.table(tableUsers)).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	return validation.Counts{"user": {"total": int(total)}}, nil
}

func (s *Store) users(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]validation.SampleRecord, error) {
	var rows []UserRow
	q := s.db.WithContext(ctx).Table(s.table(tableUsers)).Order("ID")
	if err := scope(q).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	ids := make([]int64, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	meta, err := s.meta(ctx, tableUserMeta, "user_id", "umeta_id", ids)
	if err != nil {
		return nil, err
	}

	records := make([]validation.SampleRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, validation.NewRecord(KindUser.IDField(), map[string]validation.Value{
			"ID":              validation.Int(r.ID),
			"user_login":      validation.String(r.UserLogin),
			"user_email":      validation.String(r.UserEmail),
			"user_nicename":   validation.String(r.UserNicename),
			"display_name":    validation.String(r.DisplayName),
			"user_registered": validation.String(r.UserRegistered),
		}, metaFor(meta, r.ID)))
	}
	return records, nil
}

// meta loads the metadata of the given owners, values ordered by meta id.
func (s *Store) meta(ctx context.Context, table, owner, order string, ids []int64) (map[int64]validation.Meta, error) {
	out := make(map[int64]validation.Meta, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []struct {
		OwnerID   int64
		MetaKey   string
		MetaValue string
	}
	err := s.db.WithContext(ctx).Table(s.table(table)).
		Select(owner+" AS owner_id, meta_key, COALESCE(meta_value, '') AS meta_value").
		Where(owner+" IN ?", ids).
		Order(order).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}

	for _, r := range rows {
		if _, skip := s.ignored[r.MetaKey]; skip {
			continue
		}
		if out[r.OwnerID] == nil {
			out[r.OwnerID] = validation.Meta{}
		}
		out[r.OwnerID][r.MetaKey] = append(out[r.OwnerID][r.MetaKey], r.MetaValue)
	}
	return out, nil
}

func metaFor(meta map[int64]validation.Meta, id int64) validation.Meta {
	if m, ok := meta[id]; ok {
		return m
	}
	return validation.Meta{}
}

// parseIDs converts identifiers to integers, dropping duplicates and keeping
// the first occurrence order.
func parseIDs(ids []string) ([]int64, error) {
	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidID, raw)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

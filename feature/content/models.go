package content

// Table suffixes appended to the configured prefix (wp_).
const (
	tablePosts             = "posts"
	tablePostMeta          = "postmeta"
	tableTerms             = "terms"
	tableTermTaxonomy      = "term_taxonomy"
	tableTermRelationships = "term_relationships"
	tableTermMeta          = "termmeta"
	tableUsers             = "users"
	tableUserMeta          = "usermeta"
)

// PostRow is a row of the posts table.
type PostRow struct {
	ID          int64  `gorm:"column:ID;primaryKey"`
	PostTitle   string `gorm:"column:post_title"`
	PostName    string `gorm:"column:post_name"`
	PostType    string `gorm:"column:post_type"`
	PostStatus  string `gorm:"column:post_status"`
	PostDate    string `gorm:"column:post_date;type:varchar(19)"`
	PostContent string `gorm:"column:post_content"`
	PostExcerpt string `gorm:"column:post_excerpt"`
}

// PostMetaRow is a row of the postmeta table.
type PostMetaRow struct {
	MetaID    int64  `gorm:"column:meta_id;primaryKey"`
	PostID    int64  `gorm:"column:post_id"`
	MetaKey   string `gorm:"column:meta_key"`
	MetaValue string `gorm:"column:meta_value"`
}

// TermRow is a row of the terms table.
type TermRow struct {
	TermID int64  `gorm:"column:term_id;primaryKey"`
	Name   string `gorm:"column:name"`
	Slug   string `gorm:"column:slug"`
}

// TermTaxonomyRow is a row of the term_taxonomy table.
type TermTaxonomyRow struct {
	TermTaxonomyID int64  `gorm:"column:term_taxonomy_id;primaryKey"`
	TermID         int64  `gorm:"column:term_id"`
	Taxonomy       string `gorm:"column:taxonomy"`
	Description    string `gorm:"column:description"`
	Count          int64  `gorm:"column:count"`
}

// TermRelationshipRow is a row of the term_relationships table.
type TermRelationshipRow struct {
	ObjectID       int64 `gorm:"column:object_id;primaryKey"`
	TermTaxonomyID int64 `gorm:"column:term_taxonomy_id;primaryKey"`
}

// TermMetaRow is a row of the termmeta table.
type TermMetaRow struct {
	MetaID    int64  `gorm:"column:meta_id;primaryKey"`
	TermID    int64  `gorm:"column:term_id"`
	MetaKey   string `gorm:"column:meta_key"`
	MetaValue string `gorm:"column:meta_value"`
}

// UserRow is a row of the users table.
type UserRow struct {
	ID             int64  `gorm:"column:ID;primaryKey"`
	UserLogin      string `gorm:"column:user_login"`
	UserEmail      string `gorm:"column:user_email"`
	UserNicename   string `gorm:"column:user_nicename"`
	DisplayName    string `gorm:"column:display_name"`
	UserRegistered string `gorm:"column:user_registered;type:varchar(19)"`
}

// UserMetaRow is a row of the usermeta table.
type UserMetaRow struct {
	UmetaID   int64  `gorm:"column:umeta_id;primaryKey"`
	UserID    int64  `gorm:"column:user_id"`
	MetaKey   string `gorm:"column:meta_key"`
	MetaValue string `gorm:"column:meta_value"`
}

// schema lists the columns each reader depends on, by table suffix.
var schema = map[string][]string{
	tablePosts:             {"ID", "post_title", "post_name", "post_type", "post_status", "post_date", "post_content", "post_excerpt"},
	tablePostMeta:          {"meta_id", "post_id", "meta_key", "meta_value"},
	tableTerms:             {"term_id", "name", "slug"},
	tableTermTaxonomy:      {"term_taxonomy_id", "term_id", "taxonomy", "description", "count"},
	tableTermRelationships: {"object_id", "term_taxonomy_id"},
	tableTermMeta:          {"meta_id", "term_id", "meta_key", "meta_value"},
	tableUsers:             {"ID", "user_login", "user_email", "user_nicename", "display_name", "user_registered"},
	tableUserMeta:          {"umeta_id", "user_id", "meta_key", "meta_value"},
}

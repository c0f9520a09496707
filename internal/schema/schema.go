// Package schema is the static registry for the data bank: which record kind
// lands in which table, in which column order, and under which uniqueness
// constraint. Everything here is resolved once at package init and shared
// read-only by all operations.
package schema

// Kind discriminates the shape of an incoming record and selects the target
// table and source_type value.
type Kind string

const (
	KindDetail        Kind = "detail"
	KindMix           Kind = "mix"
	KindSearchGeneral Kind = "search_general"
	KindComment       Kind = "comment"
	KindUser          Kind = "user"
	KindSearchUser    Kind = "search_user"
	KindSearchLive    Kind = "search_live"
	KindHot           Kind = "hot"
)

// reserved lists column names that collide with PostgreSQL keywords and must
// be double-quoted in every statement.
var reserved = map[string]bool{
	"desc": true,
	"text": true,
	"type": true,
	"user": true,
}

// QuoteIdentifier returns the identifier double-quoted when it is a reserved
// word, unchanged otherwise.
func QuoteIdentifier(name string) string {
	if reserved[name] {
		return `"` + name + `"`
	}
	return name
}

// Column is a table column with its quoting decided at definition time.
type Column struct {
	Name   string
	Quoted string
}

// Table describes one physical table: declared column order, the unique
// constraint used as the ON CONFLICT target (empty = plain inserts), and a
// prebuilt name→quoted-name map.
type Table struct {
	Name           string
	Columns        []Column
	ConflictTarget []string

	quoted   map[string]string
	conflict map[string]bool
}

// NewTable builds a table definition, resolving column quoting once.
// conflictTarget may be nil for tables that accept duplicate rows.
func NewTable(name string, conflictTarget []string, columns ...string) *Table {
	t := &Table{
		Name:           name,
		ConflictTarget: conflictTarget,
		quoted:         make(map[string]string, len(columns)),
		conflict:       make(map[string]bool, len(conflictTarget)),
	}
	for _, c := range columns {
		q := QuoteIdentifier(c)
		t.Columns = append(t.Columns, Column{Name: c, Quoted: q})
		t.quoted[c] = q
	}
	for _, c := range conflictTarget {
		t.conflict[c] = true
	}
	return t
}

// QuotedColumn returns the quoted form of a column name. Names outside the
// declared column list (caller-supplied filters) fall back to the runtime
// quoting rule.
func (t *Table) QuotedColumn(name string) string {
	if q, ok := t.quoted[name]; ok {
		return q
	}
	return QuoteIdentifier(name)
}

// HasConflictTarget reports whether upserts on this table resolve duplicates.
func (t *Table) HasConflictTarget() bool { return len(t.ConflictTarget) > 0 }

// IsConflictColumn reports whether the column is part of the conflict target.
func (t *Table) IsConflictColumn(name string) bool { return t.conflict[name] }

// Shared metadata columns present on every table. pk_id and created_at are
// store-managed; extra_data is the overflow JSONB column.
var metaColumns = []string{"pk_id", "source_type", "created_at"}

func withMeta(payload []string) []string {
	cols := append([]string{}, metaColumns...)
	cols = append(cols, payload...)
	return append(cols, "extra_data")
}

// contentFields is the positional order shared by every record kind stored in
// the contents table.
var contentFields = []string{
	"type", "collection_time", "uid", "sec_uid", "unique_id", "id",
	"desc", "text_extra", "duration", "height", "width", "share_url",
	"create_time", "uri", "nickname", "user_age", "signature",
	"downloads", "music_author", "music_title", "music_url",
	"static_cover", "dynamic_cover", "tag", "digg_count",
	"comment_count", "collect_count", "share_count", "play_count",
	"extra",
}

var commentFields = []string{
	"collection_time", "cid", "create_time", "uid", "sec_uid",
	"nickname", "signature", "user_age", "ip_label", "text",
	"sticker", "image", "digg_count", "reply_comment_total",
	"reply_id", "reply_to_reply_id",
}

var userFields = []string{
	"collection_time", "nickname", "url", "signature", "unique_id",
	"user_age", "gender", "country", "province", "city", "district",
	"ip_location", "verify", "enterprise", "sec_uid", "uid",
	"short_id", "avatar", "cover", "aweme_count", "total_favorited",
	"favoriting_count", "follower_count", "following_count",
	"max_follower_count",
}

var searchUserFields = []string{
	"collection_time", "uid", "sec_uid", "nickname", "unique_id",
	"short_id", "avatar", "signature", "verify", "enterprise",
	"follower_count", "total_favorited",
}

var searchLiveFields = []string{
	"collection_time", "room_id", "uid", "sec_uid", "nickname",
	"short_id", "avatar", "signature", "verify", "enterprise",
}

var hotTrendFields = []string{
	"position", "word", "hot_value", "cover", "event_time",
	"view_count", "video_count", "sentence_id",
}

// The six physical tables. The conflict target is a property of the table,
// not of the record kind: three kinds share the contents table.
var (
	Contents    = NewTable("contents", []string{"id", "source_type"}, withMeta(contentFields)...)
	Comments    = NewTable("comments", []string{"cid"}, withMeta(commentFields)...)
	Users       = NewTable("users", []string{"uid"}, withMeta(userFields)...)
	SearchUsers = NewTable("search_users", []string{"uid"}, withMeta(searchUserFields)...)
	SearchLives = NewTable("search_lives", []string{"room_id"}, withMeta(searchLiveFields)...)
	HotTrends   = NewTable("hot_trends", []string{"sentence_id", "event_time"}, withMeta(hotTrendFields)...)
)

// allTables is the fixed iteration order for statistics and full exports.
var allTables = []*Table{Contents, Comments, Users, SearchUsers, SearchLives, HotTrends}

// Tables returns every known table in a fixed order.
func Tables() []*Table {
	out := make([]*Table, len(allTables))
	copy(out, allTables)
	return out
}

// TableByName resolves a table name to its definition.
func TableByName(name string) (*Table, bool) {
	for _, t := range allTables {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Entry binds a record kind to its table, the source_type value written for
// that kind, and the documented positional field order of incoming tuples.
type Entry struct {
	Table      *Table
	SourceType string
	Fields     []string
}

var entries = map[Kind]*Entry{
	KindDetail:        {Table: Contents, SourceType: "detail", Fields: contentFields},
	KindMix:           {Table: Contents, SourceType: "mix", Fields: contentFields},
	KindSearchGeneral: {Table: Contents, SourceType: "search_general", Fields: contentFields},
	KindComment:       {Table: Comments, SourceType: "comment", Fields: commentFields},
	KindUser:          {Table: Users, SourceType: "user", Fields: userFields},
	KindSearchUser:    {Table: SearchUsers, SourceType: "search_user", Fields: searchUserFields},
	KindSearchLive:    {Table: SearchLives, SourceType: "search_live", Fields: searchLiveFields},
	KindHot:           {Table: HotTrends, SourceType: "hot", Fields: hotTrendFields},
}

// Resolve looks up the registry entry for a record kind.
func Resolve(k Kind) (*Entry, bool) {
	e, ok := entries[k]
	return e, ok
}

// Kinds returns every registered record kind in a fixed order.
func Kinds() []Kind {
	return []Kind{
		KindDetail, KindMix, KindSearchGeneral, KindComment,
		KindUser, KindSearchUser, KindSearchLive, KindHot,
	}
}

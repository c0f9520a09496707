package record

import "github.com/ruslano69/databank/internal/schema"

// Content is a post stored in the contents table. Three kinds share this
// shape (detail, mix, search_general); Source selects which one.
type Content struct {
	Source schema.Kind

	Type           *string
	CollectionTime *string
	UID            *string
	SecUID         *string
	UniqueID       *string
	ID             *string
	Desc           *string
	TextExtra      *string
	Duration       *string
	Height         *int64
	Width          *int64
	ShareURL       *string
	CreateTime     *string
	URI            *string
	Nickname       *string
	UserAge        *int64
	Signature      *string
	Downloads      *string
	MusicAuthor    *string
	MusicTitle     *string
	MusicURL       *string
	StaticCover    *string
	DynamicCover   *string
	Tag            *string
	DiggCount      *int64
	CommentCount   *int64
	CollectCount   *int64
	ShareCount     *int64
	PlayCount      *int64
	Extra          *string
}

func (c *Content) Kind() schema.Kind {
	if c.Source == "" {
		return schema.KindDetail
	}
	return c.Source
}

func (c *Content) Fields() []Field {
	fs := make([]Field, 0, 30)
	fs = appendText(fs, "type", c.Type)
	fs = appendText(fs, "collection_time", c.CollectionTime)
	fs = appendText(fs, "uid", c.UID)
	fs = appendText(fs, "sec_uid", c.SecUID)
	fs = appendText(fs, "unique_id", c.UniqueID)
	fs = appendText(fs, "id", c.ID)
	fs = appendText(fs, "desc", c.Desc)
	fs = appendText(fs, "text_extra", c.TextExtra)
	fs = appendText(fs, "duration", c.Duration)
	fs = appendCount(fs, "height", c.Height)
	fs = appendCount(fs, "width", c.Width)
	fs = appendText(fs, "share_url", c.ShareURL)
	fs = appendText(fs, "create_time", c.CreateTime)
	fs = appendText(fs, "uri", c.URI)
	fs = appendText(fs, "nickname", c.Nickname)
	fs = appendCount(fs, "user_age", c.UserAge)
	fs = appendText(fs, "signature", c.Signature)
	fs = appendText(fs, "downloads", c.Downloads)
	fs = appendText(fs, "music_author", c.MusicAuthor)
	fs = appendText(fs, "music_title", c.MusicTitle)
	fs = appendText(fs, "music_url", c.MusicURL)
	fs = appendText(fs, "static_cover", c.StaticCover)
	fs = appendText(fs, "dynamic_cover", c.DynamicCover)
	fs = appendText(fs, "tag", c.Tag)
	fs = appendCount(fs, "digg_count", c.DiggCount)
	fs = appendCount(fs, "comment_count", c.CommentCount)
	fs = appendCount(fs, "collect_count", c.CollectCount)
	fs = appendCount(fs, "share_count", c.ShareCount)
	fs = appendCount(fs, "play_count", c.PlayCount)
	fs = appendText(fs, "extra", c.Extra)
	return fs
}

// Comment is one comment under a post.
type Comment struct {
	CollectionTime    *string
	CID               *string
	CreateTime        *string
	UID               *string
	SecUID            *string
	Nickname          *string
	Signature         *string
	UserAge           *int64
	IPLabel           *string
	Text              *string
	Sticker           *string
	Image             *string
	DiggCount         *int64
	ReplyCommentTotal *int64
	ReplyID           *string
	ReplyToReplyID    *string
}

func (c *Comment) Kind() schema.Kind { return schema.KindComment }

func (c *Comment) Fields() []Field {
	fs := make([]Field, 0, 16)
	fs = appendText(fs, "collection_time", c.CollectionTime)
	fs = appendText(fs, "cid", c.CID)
	fs = appendText(fs, "create_time", c.CreateTime)
	fs = appendText(fs, "uid", c.UID)
	fs = appendText(fs, "sec_uid", c.SecUID)
	fs = appendText(fs, "nickname", c.Nickname)
	fs = appendText(fs, "signature", c.Signature)
	fs = appendCount(fs, "user_age", c.UserAge)
	fs = appendText(fs, "ip_label", c.IPLabel)
	fs = appendText(fs, "text", c.Text)
	fs = appendText(fs, "sticker", c.Sticker)
	fs = appendText(fs, "image", c.Image)
	fs = appendCount(fs, "digg_count", c.DiggCount)
	fs = appendCount(fs, "reply_comment_total", c.ReplyCommentTotal)
	fs = appendText(fs, "reply_id", c.ReplyID)
	fs = appendText(fs, "reply_to_reply_id", c.ReplyToReplyID)
	return fs
}

// User is a full user profile.
type User struct {
	CollectionTime   *string
	Nickname         *string
	URL              *string
	Signature        *string
	UniqueID         *string
	UserAge          *int64
	Gender           *string
	Country          *string
	Province         *string
	City             *string
	District         *string
	IPLocation       *string
	Verify           *string
	Enterprise       *string
	SecUID           *string
	UID              *string
	ShortID          *string
	Avatar           *string
	Cover            *string
	AwemeCount       *int64
	TotalFavorited   *int64
	FavoritingCount  *int64
	FollowerCount    *int64
	FollowingCount   *int64
	MaxFollowerCount *int64
}

func (u *User) Kind() schema.Kind { return schema.KindUser }

func (u *User) Fields() []Field {
	fs := make([]Field, 0, 25)
	fs = appendText(fs, "collection_time", u.CollectionTime)
	fs = appendText(fs, "nickname", u.Nickname)
	fs = appendText(fs, "url", u.URL)
	fs = appendText(fs, "signature", u.Signature)
	fs = appendText(fs, "unique_id", u.UniqueID)
	fs = appendCount(fs, "user_age", u.UserAge)
	fs = appendText(fs, "gender", u.Gender)
	fs = appendText(fs, "country", u.Country)
	fs = appendText(fs, "province", u.Province)
	fs = appendText(fs, "city", u.City)
	fs = appendText(fs, "district", u.District)
	fs = appendText(fs, "ip_location", u.IPLocation)
	fs = appendText(fs, "verify", u.Verify)
	fs = appendText(fs, "enterprise", u.Enterprise)
	fs = appendText(fs, "sec_uid", u.SecUID)
	fs = appendText(fs, "uid", u.UID)
	fs = appendText(fs, "short_id", u.ShortID)
	fs = appendText(fs, "avatar", u.Avatar)
	fs = appendText(fs, "cover", u.Cover)
	fs = appendCount(fs, "aweme_count", u.AwemeCount)
	fs = appendCount(fs, "total_favorited", u.TotalFavorited)
	fs = appendCount(fs, "favoriting_count", u.FavoritingCount)
	fs = appendCount(fs, "follower_count", u.FollowerCount)
	fs = appendCount(fs, "following_count", u.FollowingCount)
	fs = appendCount(fs, "max_follower_count", u.MaxFollowerCount)
	return fs
}

// SearchUser is a user row from search results (reduced profile).
type SearchUser struct {
	CollectionTime *string
	UID            *string
	SecUID         *string
	Nickname       *string
	UniqueID       *string
	ShortID        *string
	Avatar         *string
	Signature      *string
	Verify         *string
	Enterprise     *string
	FollowerCount  *int64
	TotalFavorited *int64
}

func (u *SearchUser) Kind() schema.Kind { return schema.KindSearchUser }

func (u *SearchUser) Fields() []Field {
	fs := make([]Field, 0, 12)
	fs = appendText(fs, "collection_time", u.CollectionTime)
	fs = appendText(fs, "uid", u.UID)
	fs = appendText(fs, "sec_uid", u.SecUID)
	fs = appendText(fs, "nickname", u.Nickname)
	fs = appendText(fs, "unique_id", u.UniqueID)
	fs = appendText(fs, "short_id", u.ShortID)
	fs = appendText(fs, "avatar", u.Avatar)
	fs = appendText(fs, "signature", u.Signature)
	fs = appendText(fs, "verify", u.Verify)
	fs = appendText(fs, "enterprise", u.Enterprise)
	fs = appendCount(fs, "follower_count", u.FollowerCount)
	fs = appendCount(fs, "total_favorited", u.TotalFavorited)
	return fs
}

// SearchLive is a live room from search results.
type SearchLive struct {
	CollectionTime *string
	RoomID         *string
	UID            *string
	SecUID         *string
	Nickname       *string
	ShortID        *string
	Avatar         *string
	Signature      *string
	Verify         *string
	Enterprise     *string
}

func (l *SearchLive) Kind() schema.Kind { return schema.KindSearchLive }

func (l *SearchLive) Fields() []Field {
	fs := make([]Field, 0, 10)
	fs = appendText(fs, "collection_time", l.CollectionTime)
	fs = appendText(fs, "room_id", l.RoomID)
	fs = appendText(fs, "uid", l.UID)
	fs = appendText(fs, "sec_uid", l.SecUID)
	fs = appendText(fs, "nickname", l.Nickname)
	fs = appendText(fs, "short_id", l.ShortID)
	fs = appendText(fs, "avatar", l.Avatar)
	fs = appendText(fs, "signature", l.Signature)
	fs = appendText(fs, "verify", l.Verify)
	fs = appendText(fs, "enterprise", l.Enterprise)
	return fs
}

// HotTrend is one entry of the trending board at a point in time.
type HotTrend struct {
	Position   *int64
	Word       *string
	HotValue   *int64
	Cover      *string
	EventTime  *string
	ViewCount  *int64
	VideoCount *int64
	SentenceID *string
}

func (h *HotTrend) Kind() schema.Kind { return schema.KindHot }

func (h *HotTrend) Fields() []Field {
	fs := make([]Field, 0, 8)
	fs = appendCount(fs, "position", h.Position)
	fs = appendText(fs, "word", h.Word)
	fs = appendCount(fs, "hot_value", h.HotValue)
	fs = appendText(fs, "cover", h.Cover)
	fs = appendText(fs, "event_time", h.EventTime)
	fs = appendCount(fs, "view_count", h.ViewCount)
	fs = appendCount(fs, "video_count", h.VideoCount)
	fs = appendText(fs, "sentence_id", h.SentenceID)
	return fs
}

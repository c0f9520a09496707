package record

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ruslano69/databank/internal/schema"
)

// Positional compatibility layer for upstream scrapers that still hand over
// ordered value tuples. Each kind has one mapper with literal indices; the
// index layout matches the Fields order published by schema.Resolve, which
// record_test cross-checks so the two cannot drift apart silently.

// FromTuple converts an ordered value tuple into the typed record for kind.
// Values beyond the declared field list are ignored; missing trailing values
// stay nil. The only possible failure is an unknown kind.
func FromTuple(kind schema.Kind, values []any) (Record, error) {
	t := tuple(values)
	switch kind {
	case schema.KindDetail, schema.KindMix, schema.KindSearchGeneral:
		return contentFromTuple(kind, t), nil
	case schema.KindComment:
		return commentFromTuple(t), nil
	case schema.KindUser:
		return userFromTuple(t), nil
	case schema.KindSearchUser:
		return searchUserFromTuple(t), nil
	case schema.KindSearchLive:
		return searchLiveFromTuple(t), nil
	case schema.KindHot:
		return hotTrendFromTuple(t), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// tuple wraps a positional record with bounds-safe typed accessors.
type tuple []any

// text returns the value at index i as a string pointer, nil when the index
// is out of range or the value is nil. Non-string scalars are stringified.
func (t tuple) text(i int) *string {
	if i >= len(t) || t[i] == nil {
		return nil
	}
	var s string
	switch v := t[i].(type) {
	case string:
		s = v
	default:
		s = fmt.Sprint(v)
	}
	return &s
}

// count returns the value at index i coerced to an integer. A present but
// unparsable value becomes 0 rather than an error: a single malformed field
// must never block persistence of the rest of the record. Absent or nil
// values stay nil so they are not written at all.
func (t tuple) count(i int) *int64 {
	if i >= len(t) || t[i] == nil {
		return nil
	}
	n := CoerceCount(t[i])
	return &n
}

// CoerceCount converts a loosely-typed scalar to int64, falling back to 0
// when the value cannot be interpreted as a number.
func CoerceCount(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int8:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint8:
		return int64(x)
	case uint16:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case float32:
		return int64(x)
	case float64:
		return int64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func contentFromTuple(kind schema.Kind, t tuple) *Content {
	return &Content{
		Source:         kind,
		Type:           t.text(0),
		CollectionTime: t.text(1),
		UID:            t.text(2),
		SecUID:         t.text(3),
		UniqueID:       t.text(4),
		ID:             t.text(5),
		Desc:           t.text(6),
		TextExtra:      t.text(7),
		Duration:       t.text(8),
		Height:         t.count(9),
		Width:          t.count(10),
		ShareURL:       t.text(11),
		CreateTime:     t.text(12),
		URI:            t.text(13),
		Nickname:       t.text(14),
		UserAge:        t.count(15),
		Signature:      t.text(16),
		Downloads:      t.text(17),
		MusicAuthor:    t.text(18),
		MusicTitle:     t.text(19),
		MusicURL:       t.text(20),
		StaticCover:    t.text(21),
		DynamicCover:   t.text(22),
		Tag:            t.text(23),
		DiggCount:      t.count(24),
		CommentCount:   t.count(25),
		CollectCount:   t.count(26),
		ShareCount:     t.count(27),
		PlayCount:      t.count(28),
		Extra:          t.text(29),
	}
}

func commentFromTuple(t tuple) *Comment {
	return &Comment{
		CollectionTime:    t.text(0),
		CID:               t.text(1),
		CreateTime:        t.text(2),
		UID:               t.text(3),
		SecUID:            t.text(4),
		Nickname:          t.text(5),
		Signature:         t.text(6),
		UserAge:           t.count(7),
		IPLabel:           t.text(8),
		Text:              t.text(9),
		Sticker:           t.text(10),
		Image:             t.text(11),
		DiggCount:         t.count(12),
		ReplyCommentTotal: t.count(13),
		ReplyID:           t.text(14),
		ReplyToReplyID:    t.text(15),
	}
}

func userFromTuple(t tuple) *User {
	return &User{
		CollectionTime:   t.text(0),
		Nickname:         t.text(1),
		URL:              t.text(2),
		Signature:        t.text(3),
		UniqueID:         t.text(4),
		UserAge:          t.count(5),
		Gender:           t.text(6),
		Country:          t.text(7),
		Province:         t.text(8),
		City:             t.text(9),
		District:         t.text(10),
		IPLocation:       t.text(11),
		Verify:           t.text(12),
		Enterprise:       t.text(13),
		SecUID:           t.text(14),
		UID:              t.text(15),
		ShortID:          t.text(16),
		Avatar:           t.text(17),
		Cover:            t.text(18),
		AwemeCount:       t.count(19),
		TotalFavorited:   t.count(20),
		FavoritingCount:  t.count(21),
		FollowerCount:    t.count(22),
		FollowingCount:   t.count(23),
		MaxFollowerCount: t.count(24),
	}
}

func searchUserFromTuple(t tuple) *SearchUser {
	return &SearchUser{
		CollectionTime: t.text(0),
		UID:            t.text(1),
		SecUID:         t.text(2),
		Nickname:       t.text(3),
		UniqueID:       t.text(4),
		ShortID:        t.text(5),
		Avatar:         t.text(6),
		Signature:      t.text(7),
		Verify:         t.text(8),
		Enterprise:     t.text(9),
		FollowerCount:  t.count(10),
		TotalFavorited: t.count(11),
	}
}

func searchLiveFromTuple(t tuple) *SearchLive {
	return &SearchLive{
		CollectionTime: t.text(0),
		RoomID:         t.text(1),
		UID:            t.text(2),
		SecUID:         t.text(3),
		Nickname:       t.text(4),
		ShortID:        t.text(5),
		Avatar:         t.text(6),
		Signature:      t.text(7),
		Verify:         t.text(8),
		Enterprise:     t.text(9),
	}
}

func hotTrendFromTuple(t tuple) *HotTrend {
	return &HotTrend{
		Position:   t.count(0),
		Word:       t.text(1),
		HotValue:   t.count(2),
		Cover:      t.text(3),
		EventTime:  t.text(4),
		ViewCount:  t.count(5),
		VideoCount: t.count(6),
		SentenceID: t.text(7),
	}
}

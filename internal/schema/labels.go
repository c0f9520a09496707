package schema

// Presentation metadata for the spreadsheet exporter: human-readable column
// headers and sheet names per table.

var sheetNames = map[string]string{
	"contents":     "Contents",
	"comments":     "Comments",
	"users":        "Users",
	"search_users": "Search Users",
	"search_lives": "Search Lives",
	"hot_trends":   "Hot Trends",
}

// SheetName returns the spreadsheet sheet title for a table, falling back to
// the raw table name.
func SheetName(table string) string {
	if s, ok := sheetNames[table]; ok {
		return s
	}
	return table
}

var columnLabels = map[string]map[string]string{
	"contents": {
		"pk_id":           "ID",
		"source_type":     "Source Type",
		"created_at":      "Saved At",
		"type":            "Content Type",
		"collection_time": "Collection Time",
		"uid":             "UID",
		"sec_uid":         "SEC_UID",
		"unique_id":       "Account ID",
		"id":              "Content ID",
		"desc":            "Description",
		"text_extra":      "Topics/Tags",
		"duration":        "Duration",
		"height":          "Height",
		"width":           "Width",
		"share_url":       "Share URL",
		"create_time":     "Publish Time",
		"uri":             "Video URI",
		"nickname":        "Nickname",
		"user_age":        "Age",
		"signature":       "Bio",
		"downloads":       "Download URL",
		"music_author":    "Music Author",
		"music_title":     "Music Title",
		"music_url":       "Music URL",
		"static_cover":    "Static Cover",
		"dynamic_cover":   "Dynamic Cover",
		"tag":             "Hidden Tags",
		"digg_count":      "Likes",
		"comment_count":   "Comments",
		"collect_count":   "Favorites",
		"share_count":     "Shares",
		"play_count":      "Plays",
		"extra":           "Extra Info",
	},
	"comments": {
		"pk_id":               "ID",
		"source_type":         "Source Type",
		"created_at":          "Saved At",
		"collection_time":     "Collection Time",
		"cid":                 "Comment ID",
		"create_time":         "Comment Time",
		"uid":                 "UID",
		"sec_uid":             "SEC_UID",
		"nickname":            "Nickname",
		"signature":           "Bio",
		"user_age":            "Age",
		"ip_label":            "IP Location",
		"text":                "Comment Text",
		"sticker":             "Sticker",
		"image":               "Image",
		"digg_count":          "Likes",
		"reply_comment_total": "Replies",
		"reply_id":            "Reply ID",
		"reply_to_reply_id":   "Reply To",
	},
	"users": {
		"pk_id":              "ID",
		"source_type":        "Source Type",
		"created_at":         "Saved At",
		"collection_time":    "Collection Time",
		"nickname":           "Nickname",
		"url":                "Profile URL",
		"signature":          "Bio",
		"unique_id":          "Account ID",
		"user_age":           "Age",
		"gender":             "Gender",
		"country":            "Country",
		"province":           "Province",
		"city":               "City",
		"district":           "District",
		"ip_location":        "IP Location",
		"verify":             "Verification",
		"enterprise":         "Enterprise",
		"sec_uid":            "SEC_UID",
		"uid":                "UID",
		"short_id":           "SHORT_ID",
		"avatar":             "Avatar URL",
		"cover":              "Cover URL",
		"aweme_count":        "Posts",
		"total_favorited":    "Total Likes",
		"favoriting_count":   "Favorites Given",
		"follower_count":     "Followers",
		"following_count":    "Following",
		"max_follower_count": "Max Followers",
	},
	"search_users": {
		"pk_id":           "ID",
		"source_type":     "Source Type",
		"created_at":      "Saved At",
		"collection_time": "Collection Time",
		"uid":             "UID",
		"sec_uid":         "SEC_UID",
		"nickname":        "Nickname",
		"unique_id":       "Account ID",
		"short_id":        "SHORT_ID",
		"avatar":          "Avatar URL",
		"signature":       "Bio",
		"verify":          "Verification",
		"enterprise":      "Enterprise",
		"follower_count":  "Followers",
		"total_favorited": "Total Likes",
	},
	"search_lives": {
		"pk_id":           "ID",
		"source_type":     "Source Type",
		"created_at":      "Saved At",
		"collection_time": "Collection Time",
		"room_id":         "Room ID",
		"uid":             "UID",
		"sec_uid":         "SEC_UID",
		"nickname":        "Nickname",
		"short_id":        "SHORT_ID",
		"avatar":          "Avatar URL",
		"signature":       "Bio",
		"verify":          "Verification",
		"enterprise":      "Enterprise",
	},
	"hot_trends": {
		"pk_id":       "ID",
		"source_type": "Source Type",
		"created_at":  "Saved At",
		"position":    "Rank",
		"word":        "Content",
		"hot_value":   "Hot Value",
		"cover":       "Cover",
		"event_time":  "Event Time",
		"view_count":  "Views",
		"video_count": "Videos",
		"sentence_id": "Sentence ID",
	},
}

// ColumnLabel returns the human-readable header for a column, falling back to
// the raw column name.
func ColumnLabel(table, column string) string {
	if labels, ok := columnLabels[table]; ok {
		if l, ok := labels[column]; ok {
			return l
		}
	}
	return column
}

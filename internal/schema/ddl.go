package schema

// DDL statements executed on store initialization. Everything is
// IF NOT EXISTS so initialization is idempotent and safe to repeat.

const createContentsTable = `
CREATE TABLE IF NOT EXISTS contents (
    pk_id           SERIAL PRIMARY KEY,
    source_type     VARCHAR(50) NOT NULL DEFAULT 'detail',
    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),

    type            TEXT,
    collection_time TEXT,
    uid             TEXT,
    sec_uid         TEXT,
    unique_id       TEXT,
    id              TEXT,
    "desc"          TEXT,
    text_extra      TEXT,
    duration        TEXT,
    height          INTEGER,
    width           INTEGER,
    share_url       TEXT,
    create_time     TEXT,
    uri             TEXT,
    nickname        TEXT,
    user_age        INTEGER,
    signature       TEXT,
    downloads       TEXT,
    music_author    TEXT,
    music_title     TEXT,
    music_url       TEXT,
    static_cover    TEXT,
    dynamic_cover   TEXT,
    tag             TEXT,
    digg_count      INTEGER DEFAULT 0,
    comment_count   INTEGER DEFAULT 0,
    collect_count   INTEGER DEFAULT 0,
    share_count     INTEGER DEFAULT 0,
    play_count      INTEGER DEFAULT 0,
    extra           TEXT,

    extra_data      JSONB,

    CONSTRAINT uq_contents_id UNIQUE (id, source_type)
);
`

const createCommentsTable = `
CREATE TABLE IF NOT EXISTS comments (
    pk_id               SERIAL PRIMARY KEY,
    source_type         VARCHAR(50) NOT NULL DEFAULT 'comment',
    created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),

    collection_time     TEXT,
    cid                 TEXT,
    create_time         TEXT,
    uid                 TEXT,
    sec_uid             TEXT,
    nickname            TEXT,
    signature           TEXT,
    user_age            INTEGER,
    ip_label            TEXT,
    text                TEXT,
    sticker             TEXT,
    image               TEXT,
    digg_count          INTEGER DEFAULT 0,
    reply_comment_total INTEGER DEFAULT 0,
    reply_id            TEXT,
    reply_to_reply_id   TEXT,

    extra_data          JSONB,

    CONSTRAINT uq_comments_cid UNIQUE (cid)
);
`

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    pk_id               SERIAL PRIMARY KEY,
    source_type         VARCHAR(50) NOT NULL DEFAULT 'user',
    created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),

    collection_time     TEXT,
    nickname            TEXT,
    url                 TEXT,
    signature           TEXT,
    unique_id           TEXT,
    user_age            INTEGER,
    gender              TEXT,
    country             TEXT,
    province            TEXT,
    city                TEXT,
    district            TEXT,
    ip_location         TEXT,
    verify              TEXT,
    enterprise          TEXT,
    sec_uid             TEXT,
    uid                 TEXT,
    short_id            TEXT,
    avatar              TEXT,
    cover               TEXT,
    aweme_count         INTEGER DEFAULT 0,
    total_favorited     INTEGER DEFAULT 0,
    favoriting_count    INTEGER DEFAULT 0,
    follower_count      INTEGER DEFAULT 0,
    following_count     INTEGER DEFAULT 0,
    max_follower_count  INTEGER DEFAULT 0,

    extra_data          JSONB,

    CONSTRAINT uq_users_uid UNIQUE (uid)
);
`

const createSearchUsersTable = `
CREATE TABLE IF NOT EXISTS search_users (
    pk_id               SERIAL PRIMARY KEY,
    source_type         VARCHAR(50) NOT NULL DEFAULT 'search_user',
    created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),

    collection_time     TEXT,
    uid                 TEXT,
    sec_uid             TEXT,
    nickname            TEXT,
    unique_id           TEXT,
    short_id            TEXT,
    avatar              TEXT,
    signature           TEXT,
    verify              TEXT,
    enterprise          TEXT,
    follower_count      INTEGER DEFAULT 0,
    total_favorited     INTEGER DEFAULT 0,

    extra_data          JSONB,

    CONSTRAINT uq_search_users_uid UNIQUE (uid)
);
`

const createSearchLivesTable = `
CREATE TABLE IF NOT EXISTS search_lives (
    pk_id               SERIAL PRIMARY KEY,
    source_type         VARCHAR(50) NOT NULL DEFAULT 'search_live',
    created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),

    collection_time     TEXT,
    room_id             TEXT,
    uid                 TEXT,
    sec_uid             TEXT,
    nickname            TEXT,
    short_id            TEXT,
    avatar              TEXT,
    signature           TEXT,
    verify              TEXT,
    enterprise          TEXT,

    extra_data          JSONB,

    CONSTRAINT uq_search_lives_room_id UNIQUE (room_id)
);
`

const createHotTrendsTable = `
CREATE TABLE IF NOT EXISTS hot_trends (
    pk_id               SERIAL PRIMARY KEY,
    source_type         VARCHAR(50) NOT NULL DEFAULT 'hot',
    created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW(),

    position            INTEGER,
    word                TEXT,
    hot_value           INTEGER DEFAULT 0,
    cover               TEXT,
    event_time          TEXT,
    view_count          INTEGER DEFAULT 0,
    video_count         INTEGER DEFAULT 0,
    sentence_id         TEXT,

    extra_data          JSONB,

    CONSTRAINT uq_hot_trends_sentence UNIQUE (sentence_id, event_time)
);
`

const createIndexes = `
CREATE INDEX IF NOT EXISTS idx_contents_uid ON contents (uid);
CREATE INDEX IF NOT EXISTS idx_contents_nickname ON contents (nickname);
CREATE INDEX IF NOT EXISTS idx_contents_create_time ON contents (create_time);
CREATE INDEX IF NOT EXISTS idx_contents_source_type ON contents (source_type);
CREATE INDEX IF NOT EXISTS idx_contents_created_at ON contents (created_at);
CREATE INDEX IF NOT EXISTS idx_comments_uid ON comments (uid);
CREATE INDEX IF NOT EXISTS idx_comments_create_time ON comments (create_time);
CREATE INDEX IF NOT EXISTS idx_users_nickname ON users (nickname);
CREATE INDEX IF NOT EXISTS idx_users_uid ON users (uid);
CREATE INDEX IF NOT EXISTS idx_hot_trends_event_time ON hot_trends (event_time);
`

// DDL is the combined idempotent schema-creation script.
const DDL = createContentsTable +
	createCommentsTable +
	createUsersTable +
	createSearchUsersTable +
	createSearchLivesTable +
	createHotTrendsTable +
	createIndexes

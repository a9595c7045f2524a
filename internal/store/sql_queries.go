package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	userColumns = `user_id, language, phone_no, password, fullname, account_no, ifsc_code, branch, is_linked, created_at`

	createUser = `INSERT INTO users (language, phone_no, password, fullname)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + userColumns + `;`

	findUserByPhone = `SELECT ` + userColumns + `
    FROM users
    WHERE phone_no = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	activateAccount = `UPDATE users
    SET account_no = $1, ifsc_code = $2, branch = $3, is_linked = TRUE
    WHERE user_id = $4
    RETURNING ` + userColumns + `;`

	listUserQueryIDs = `SELECT query_id
    FROM queries
    WHERE user_id = $1
    ORDER BY query_id;`

	createQuery = `INSERT INTO queries (user_id, voice_data, text, language, short_answer, long_answer, provided_doc)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING query_id, created_at;`

	createDocument = `INSERT INTO documents (user_id, filename, original_name, mime_type, size, file_path)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING document_id, uploaded_at;`

	awarenessColumns = `content_id, title, content, category, slug, tags, translations, is_published, views, created_at, updated_at`

	createAwarenessContent = `INSERT INTO awareness_content (title, content, category, slug, tags, translations)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + awarenessColumns + `;`

	findAwarenessContentBySlug = `SELECT ` + awarenessColumns + `
    FROM awareness_content
    WHERE slug = $1;`

	publishAwarenessContent = `UPDATE awareness_content
    SET is_published = TRUE, updated_at = NOW()
    WHERE slug = $1
    RETURNING ` + awarenessColumns + `;`

	incrementAwarenessViews = `UPDATE awareness_content
    SET views = views + 1
    WHERE slug = $1
    RETURNING views;`

	countUsers        = `SELECT COUNT(*) FROM users;`
	countUsersBetween = `SELECT COUNT(*) FROM users WHERE created_at >= $1 AND created_at < $2;`
	countQueries      = `SELECT COUNT(*) FROM queries;`
	countDocuments    = `SELECT COUNT(*) FROM documents;`

	queryLanguageDistribution = `SELECT language, COUNT(*)
    FROM queries
    GROUP BY language
    ORDER BY language;`

	getAnalyticsByDate = `SELECT date, metrics, created_at
    FROM analytics
    WHERE date = $1;`
)

// buildListAwarenessQuery builds the awareness content listing with optional
// category and published filters applied.
func buildListAwarenessQuery(filter AwarenessFilter) (string, []any, error) {
	builder := sq.Select(
		"content_id", "title", "content", "category", "slug",
		"tags", "translations", "is_published", "views",
		"created_at", "updated_at",
	).
		From("awareness_content").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.Published != nil {
		builder = builder.Where(sq.Eq{"is_published": *filter.Published})
	}

	return builder.ToSql()
}

// buildUpsertAnalyticsQuery builds the daily metrics upsert. A second rollup
// for the same date overwrites the stored metrics.
func buildUpsertAnalyticsQuery(day any, metricsJSON []byte) (string, []any, error) {
	return sq.Insert("analytics").
		Columns("date", "metrics").
		Values(day, metricsJSON).
		Suffix("ON CONFLICT (date) DO UPDATE SET metrics = EXCLUDED.metrics").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

package etl

// Warehouse schema. The catalog's referential looseness (anonymous user 0,
// accepted orphans) rules out foreign keys here; the data-mart views join by
// id and simply skip rows that do not match.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		id    INTEGER PRIMARY KEY,
		title TEXT NOT NULL,
		genre TEXT NOT NULL,
		year  INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id      INTEGER PRIMARY KEY,
		name    TEXT NOT NULL,
		age     INTEGER NOT NULL DEFAULT 0,
		country TEXT NOT NULL DEFAULT 'Unknown'
	)`,
	`CREATE TABLE IF NOT EXISTS ratings (
		id       INTEGER PRIMARY KEY,
		user_id  INTEGER NOT NULL,
		movie_id INTEGER NOT NULL,
		score    INTEGER NOT NULL
	)`,
}

// Data-mart views over the loaded tables.
var viewStatements = map[string]string{
	"top_movies": `
		CREATE OR REPLACE VIEW top_movies AS
		SELECT m.title, m.genre, ROUND(AVG(r.score)::numeric,2) as avg_score, COUNT(r.id) as total_ratings
		FROM movies m
		JOIN ratings r ON m.id = r.movie_id
		GROUP BY m.title, m.genre
		ORDER BY avg_score DESC, total_ratings DESC
		LIMIT 10;
	`,
	"avg_rating_by_country": `
		CREATE OR REPLACE VIEW avg_rating_by_country AS
		SELECT u.country, ROUND(AVG(r.score)::numeric,2) as avg_score, COUNT(r.id) as total_ratings
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		GROUP BY u.country
		ORDER BY avg_score DESC;
	`,
	"avg_rating_by_age_group": `
		CREATE OR REPLACE VIEW avg_rating_by_age_group AS
		SELECT
		  CASE
		    WHEN age < 20 THEN 'under 20'
		    WHEN age BETWEEN 20 AND 29 THEN '20s'
		    WHEN age BETWEEN 30 AND 39 THEN '30s'
		    WHEN age BETWEEN 40 AND 49 THEN '40s'
		    ELSE '50+'
		  END as age_group,
		  ROUND(AVG(r.score)::numeric,2) as avg_score,
		  COUNT(r.id) as total_ratings
		FROM ratings r
		JOIN users u ON u.id = r.user_id
		GROUP BY age_group
		ORDER BY avg_score DESC;
	`,
	"best_genre": `
		CREATE OR REPLACE VIEW best_genre AS
		SELECT m.genre, ROUND(AVG(r.score)::numeric,2) as avg_score, COUNT(r.id) as total_ratings
		FROM movies m
		JOIN ratings r ON m.id = r.movie_id
		GROUP BY m.genre
		ORDER BY avg_score DESC, total_ratings DESC
		LIMIT 1;
	`,
}

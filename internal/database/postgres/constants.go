package postgres

// Player queries
const (
	sqlSelectPlayer = `
		SELECT id::text, username, balance, created_at
		FROM players`

	sqlGetPlayer           = sqlSelectPlayer + ` WHERE id = $1`
	sqlGetPlayerForUpdate  = sqlSelectPlayer + ` WHERE id = $1 FOR UPDATE`
	sqlGetPlayerByUsername = sqlSelectPlayer + ` WHERE lower(username) = lower($1)`
	sqlListPlayers         = sqlSelectPlayer + ` ORDER BY balance DESC, created_at ASC`

	sqlInsertPlayer = `
		INSERT INTO players (id, username, balance, created_at)
		VALUES ($1, $2, $3, $4)`

	sqlUpdatePlayerBalance = `UPDATE players SET balance = $2 WHERE id = $1`

	sqlListOtherPlayerIDs = `SELECT id::text FROM players WHERE id <> $1 ORDER BY created_at, id`
)

// Site queries
const (
	sqlSelectSite = `
		SELECT id::text, player_id::text, kind, workers, amount, level, last_gather
		FROM sites`

	sqlGetSite          = sqlSelectSite + ` WHERE player_id = $1 AND kind = $2`
	sqlGetSiteForUpdate = sqlSelectSite + ` WHERE player_id = $1 AND kind = $2 FOR UPDATE`
	sqlListSites        = sqlSelectSite + ` WHERE player_id = ANY($1) ORDER BY player_id, kind`

	sqlInsertSite = `
		INSERT INTO sites (id, player_id, kind, workers, amount, level, last_gather)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	sqlUpdateSite = `
		UPDATE sites
		SET workers = $2, amount = $3, level = $4, last_gather = $5
		WHERE id = $1`
)

// Bonus queries
const (
	sqlSelectBonus = `
		SELECT id::text, kind, level, available_until, cost, duration, created_at
		FROM bonuses`

	sqlGetBonus            = sqlSelectBonus + ` WHERE id = $1`
	sqlGetBonusForUpdate   = sqlSelectBonus + ` WHERE id = $1 FOR UPDATE`
	sqlListAvailable       = sqlSelectBonus + ` WHERE available_until > $1 ORDER BY available_until, id`
	sqlCountAvailable      = `SELECT count(*) FROM bonuses WHERE available_until > $1`
	sqlUpdateAvailableTime = `UPDATE bonuses SET available_until = $2 WHERE id = $1`

	sqlInsertBonus = `
		INSERT INTO bonuses (id, kind, level, available_until, cost, duration, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	// SQLAdvisoryLock acquires a PostgreSQL advisory transaction lock
	sqlAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"
)

// Activation queries
const (
	sqlSelectActivation = `
		SELECT a.id::text, a.player_id::text, a.bonus_id::text, a.active_until, a.created_at,
		       b.id::text, b.kind, b.level, b.available_until, b.cost, b.duration, b.created_at
		FROM bonus_activations a
		JOIN bonuses b ON b.id = a.bonus_id`

	sqlListActiveBonuses = sqlSelectActivation + ` WHERE a.player_id = $1 AND a.active_until > $2 ORDER BY a.active_until`
	sqlListActivations   = sqlSelectActivation + ` WHERE a.player_id = $1 ORDER BY a.created_at`

	sqlHasActivation = `SELECT EXISTS (SELECT 1 FROM bonus_activations WHERE player_id = $1 AND bonus_id = $2)`

	sqlInsertActivation = `
		INSERT INTO bonus_activations (id, player_id, bonus_id, active_until, created_at)
		VALUES ($1, $2, $3, $4, $5)`
)

const bonusPoolLockName = "bonus_pool"

package sqlite

const dsnPragmas = "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

const (
	sqlSelectPlayer = `SELECT id, username, balance, created_at FROM players`

	sqlGetPlayer           = sqlSelectPlayer + ` WHERE id = ?`
	sqlGetPlayerByUsername = sqlSelectPlayer + ` WHERE lower(username) = lower(?)`
	sqlListPlayers         = sqlSelectPlayer + ` ORDER BY balance DESC, created_at ASC`
	sqlInsertPlayer        = `INSERT INTO players (id, username, balance, created_at) VALUES (:id, :username, :balance, :created_at)`
	sqlUpdatePlayerBalance = `UPDATE players SET balance = ? WHERE id = ?`
	sqlListOtherPlayerIDs  = `SELECT id FROM players WHERE id <> ? ORDER BY created_at, id`
)

const (
	sqlSelectSite = `SELECT id, player_id, kind, workers, amount, level, last_gather FROM sites`

	sqlGetSite    = sqlSelectSite + ` WHERE player_id = ? AND kind = ?`
	sqlListSites  = sqlSelectSite + ` WHERE player_id IN (?) ORDER BY player_id, kind`
	sqlInsertSite = `INSERT INTO sites (id, player_id, kind, workers, amount, level, last_gather) VALUES (:id, :player_id, :kind, :workers, :amount, :level, :last_gather)`
	sqlUpdateSite = `UPDATE sites SET workers = :workers, amount = :amount, level = :level, last_gather = :last_gather WHERE id = :id`
)

const (
	sqlSelectBonus = `SELECT id, kind, level, available_until, cost, duration, created_at FROM bonuses`

	sqlGetBonus            = sqlSelectBonus + ` WHERE id = ?`
	sqlListAvailable       = sqlSelectBonus + ` WHERE available_until > ? ORDER BY available_until, id`
	sqlCountAvailable      = `SELECT count(*) FROM bonuses WHERE available_until > ?`
	sqlUpdateAvailableTime = `UPDATE bonuses SET available_until = ? WHERE id = ?`
	sqlInsertBonus         = `INSERT INTO bonuses (id, kind, level, available_until, cost, duration, created_at) VALUES (:id, :kind, :level, :available_until, :cost, :duration, :created_at)`
)

const (
	sqlSelectActivation = `
		SELECT a.id, a.player_id, a.bonus_id, a.active_until, a.created_at,
		       b.kind AS bonus_kind, b.level AS bonus_level, b.available_until AS bonus_available_until,
		       b.cost AS bonus_cost, b.duration AS bonus_duration, b.created_at AS bonus_created_at
		FROM bonus_activations a
		JOIN bonuses b ON b.id = a.bonus_id`

	sqlListActiveBonuses = sqlSelectActivation + ` WHERE a.player_id = ? AND a.active_until > ? ORDER BY a.active_until`
	sqlListActivations   = sqlSelectActivation + ` WHERE a.player_id = ? ORDER BY a.created_at`
	sqlHasActivation     = `SELECT EXISTS (SELECT 1 FROM bonus_activations WHERE player_id = ? AND bonus_id = ?)`
	sqlInsertActivation  = `INSERT INTO bonus_activations (id, player_id, bonus_id, active_until, created_at) VALUES (:id, :player_id, :bonus_id, :active_until, :created_at)`
)

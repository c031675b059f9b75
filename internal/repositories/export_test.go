package repositories

// Container helpers shared with the integration tests in repositories_test.
var (
	SetupPostgres = setupPostgres
	SetupRedis    = setupRedis
)

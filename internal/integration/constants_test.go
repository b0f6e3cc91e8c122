package integration_test

const (
	TestUserId      = 1
	TestOtherUserId = 2
	TestUserEmail   = "test@example.com"
)

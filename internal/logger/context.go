package logger

// Component-specific logger functions

// Seed returns a logger for row synthesis
func Seed() Logger {
	return WithField("component", "seed")
}

// SQL returns a logger for SQL generation operations
func SQL() Logger {
	return WithField("component", "sql")
}

// CLI returns a logger for CLI operations
func CLI() Logger {
	return WithField("component", "cli")
}

// DB returns a logger for database operations
func DB() Logger {
	return WithField("component", "db")
}

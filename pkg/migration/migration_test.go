package migration

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestWithMultiStatements(t *testing.T) {
	assert.Equal(t,
		"root:1@tcp(localhost:3306)/reva?parseTime=true&multiStatements=true",
		withMultiStatements("root:1@tcp(localhost:3306)/reva?parseTime=true"))

	assert.Equal(t,
		"root:1@tcp(localhost:3306)/reva?multiStatements=true",
		withMultiStatements("root:1@tcp(localhost:3306)/reva"))

	assert.Equal(t,
		"root:1@tcp(localhost:3306)/reva?multiStatements=false",
		withMultiStatements("root:1@tcp(localhost:3306)/reva?multiStatements=false"))
}

func TestMigrateCommand(t *testing.T) {
	cmd := MigrateCommand("root:1@tcp(localhost:3306)/reva")

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Equal(t, []string{"down", "force", "up", "version"}, names)
}

package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/cmlabs-hris/hrms-lite-go/internal/domain/employee"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	testSetup *TestDatabaseSetup
	setupErr  error
)

func TestMain(m *testing.M) {
	testSetup, setupErr = NewTestDatabase()
	code := m.Run()
	if testSetup != nil {
		testSetup.Close()
	}
	os.Exit(code)
}

// freshDatabase skips the test when no database is reachable and otherwise
// hands back an empty schema.
func freshDatabase(t *testing.T) *TestDatabaseSetup {
	t.Helper()
	if testSetup == nil {
		t.Skipf("skipping integration test: %v", setupErr)
	}
	require.NoError(t, testSetup.TruncateAllTables(context.Background()))
	return testSetup
}

func newEmployee(name string) employee.Employee {
	suffix := uuid.NewString()[:8]
	return employee.Employee{
		EmployeeID: fmt.Sprintf("E-%s", suffix),
		Name:       name,
		Email:      fmt.Sprintf("%s.%s@example.com", name, suffix),
		Department: "Engineering",
	}
}

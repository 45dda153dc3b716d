package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		license_number TEXT,
		verification_status TEXT NOT NULL,
		verification_request_id TEXT,
		last_active_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE system_flags (
		name TEXT PRIMARY KEY,
		value BOOLEAN NOT NULL,
		updated_at DATETIME
	);`)
}

func createVerificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE verification_requests (
		id TEXT PRIMARY KEY,
		requester_id TEXT NOT NULL,
		type TEXT NOT NULL,
		institution_name TEXT NOT NULL,
		institution_website TEXT,
		license_authority TEXT,
		license_authority_website TEXT,
		license_number TEXT,
		documents TEXT,
		status TEXT NOT NULL,
		submitted_at DATETIME NOT NULL,
		processed_at DATETIME,
		processed_by TEXT,
		admin_notes TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCaseTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE patient_cases (
		id TEXT PRIMARY KEY,
		patient_id TEXT NOT NULL,
		patient_name TEXT NOT NULL,
		patient_contact TEXT,
		title TEXT NOT NULL,
		description TEXT,
		medical_condition TEXT,
		required_amount INTEGER NOT NULL,
		documents TEXT,
		urgency TEXT NOT NULL,
		status TEXT NOT NULL,
		reviewed_at DATETIME,
		reviewed_by TEXT,
		admin_notes TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPoolTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE contribution_pools (
		id TEXT PRIMARY KEY,
		case_id TEXT NOT NULL UNIQUE,
		ngo_id TEXT NOT NULL,
		ngo_name TEXT,
		title TEXT NOT NULL,
		description TEXT,
		target_amount INTEGER NOT NULL,
		current_amount INTEGER NOT NULL DEFAULT 0,
		contributors_count INTEGER NOT NULL DEFAULT 0,
		deadline DATETIME,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		is_completed BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE contributions (
		id TEXT PRIMARY KEY,
		pool_id TEXT NOT NULL,
		contributor_id TEXT NOT NULL,
		amount INTEGER NOT NULL,
		message TEXT,
		is_anonymous BOOLEAN NOT NULL DEFAULT 0,
		contributed_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
}

func createMedicineTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE medicines (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		dosage TEXT,
		frequency TEXT,
		duration TEXT,
		side_effects TEXT,
		guide_text TEXT,
		guide_source TEXT,
		doctor_id TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPrescriptionTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE prescriptions (
		id TEXT PRIMARY KEY,
		code TEXT UNIQUE NOT NULL,
		doctor_id TEXT NOT NULL,
		patient_name TEXT NOT NULL,
		patient_contact TEXT NOT NULL,
		additional_notes TEXT,
		claimed_by TEXT,
		accessed_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE prescription_medicines (
		id TEXT PRIMARY KEY,
		prescription_id TEXT NOT NULL,
		medicine_id TEXT NOT NULL,
		custom_dosage TEXT,
		custom_instructions TEXT
	);`)
}

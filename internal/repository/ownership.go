package repository

import "gorm.io/gorm"

// ownerScope describes how a table reaches the users.id that owns its rows.
// Resources owned directly carry a user_id column; indirect ones join their
// way to a table that does.
type ownerScope struct {
	table  string
	joins  []string
	column string
}

func directOwner(table string) ownerScope {
	return ownerScope{table: table, column: table + ".user_id"}
}

var (
	appointmentOwner       = directOwner("appointments")
	medicalRecordOwner     = directOwner("medical_records")
	medicationRequestOwner = directOwner("medication_requests")
	authorizationOwner     = directOwner("authorizations")

	examinationResultOwner = ownerScope{
		table:  "examination_results",
		joins:  []string{"JOIN appointments ON appointments.id = examination_results.appointment_id"},
		column: "appointments.user_id",
	}
)

// Owned restricts a query to rows belonging to userID.
func (o ownerScope) Owned(userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, join := range o.joins {
			db = db.Joins(join)
		}
		return db.Where(o.column+" = ?", userID)
	}
}

// OwnedByID matches a single row by id and owner together, so a row that
// exists for someone else is indistinguishable from one that does not exist.
func (o ownerScope) OwnedByID(id, userID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Scopes(o.Owned(userID)).Where(o.table+".id = ?", id)
	}
}

// orderColumn qualifies a sort column so joined queries stay unambiguous.
func (o ownerScope) orderColumn(column string) string {
	return o.table + "." + column
}

package repository

// Models lists every table in migration order.
func Models() []interface{} {
	return []interface{}{
		&Event{},
		&Competition{},
		&Participant{},
		&CompetitionRegistration{},
		&User{},
	}
}

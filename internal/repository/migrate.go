package repository

// Models lists every gorm model in dependency order for AutoMigrate.
func Models() []any {
	return []any{
		&userModel{},
		&listingModel{},
		&bookingModel{},
		&reviewModel{},
	}
}

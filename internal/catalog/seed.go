package catalog

// Demo form definitions installed by `formflow serve --demo`.
var demoForms = []Record{
	{
		ID:   "contact",
		Name: "Contact Form",
		Schema: `{
			"type": "object",
			"required": ["fullName", "email"],
			"properties": {
				"fullName": {"type": "string", "minLength": 1},
				"email": {"type": "string", "format": "email"},
				"message": {"type": "string"}
			}
		}`,
	},
	{
		ID:   "job-application",
		Name: "Job Application",
		Schema: `{
			"type": "object",
			"required": ["applicant", "position"],
			"properties": {
				"applicant": {
					"type": "object",
					"required": ["fullName", "email"],
					"properties": {
						"fullName": {"type": "string", "minLength": 1},
						"email": {"type": "string", "format": "email"},
						"phone": {"type": "string"}
					}
				},
				"position": {"type": "string", "minLength": 1},
				"yearsExperience": {"type": "number", "minimum": 0},
				"coverLetter": {"type": "string"}
			}
		}`,
	},
}

// Seed inserts the demo forms when the catalog is empty and reports how
// many were added. On a non-empty catalog it is a no-op, so forms a user
// registered are never clobbered.
func (s *Store) Seed() (int, error) {
	n, err := s.Count()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for _, f := range demoForms {
		if err := s.Save(f.ID, f.Name, f.Schema); err != nil {
			return 0, err
		}
	}
	return len(demoForms), nil
}

package models

// BilingualText is an Arabic/English string pair.
type BilingualText struct {
	AR string `json:"ar"`
	EN string `json:"en"`
}

type SubCategory struct {
	ID   string        `json:"id"`
	Name BilingualText `json:"name"`
}

// Category is a top-level award track. Static data, never persisted.
type Category struct {
	ID            string        `json:"id"`
	Name          BilingualText `json:"name"`
	Description   BilingualText `json:"description"`
	Icon          string        `json:"icon"`
	Subcategories []SubCategory `json:"subcategories"`
}

type AboutCard struct {
	Key   string        `json:"key"`
	Title BilingualText `json:"title"`
	Text  BilingualText `json:"text"`
}

type AboutContent struct {
	SectionTitle BilingualText `json:"section_title"`
	Cards        []AboutCard   `json:"cards"`
}

type StepItem struct {
	Number      int           `json:"number"`
	Title       BilingualText `json:"title"`
	Description BilingualText `json:"description"`
}

type StepsContent struct {
	SectionTitle BilingualText `json:"section_title"`
	Steps        []StepItem    `json:"steps"`
}

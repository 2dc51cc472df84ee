// Package catalog holds the static award content: categories, the
// "about" section and the application steps. Hardcoded for now; meant to
// swap to a database later without changing the API contract.
package catalog

import "awards_backend/internal/models"

// Categories returns all award categories with their subcategories, in
// fixed display order.
func Categories() []models.Category {
	return []models.Category{
		{
			ID:   "department",
			Name: models.BilingualText{AR: "الإدارة المتميزة", EN: "Outstanding Department"},
			Description: models.BilingualText{
				AR: "تكريم الأقسام التي حققت أداءً استثنائياً وتميّزاً في العمليات والنتائج.",
				EN: "Recognizing departments that achieved exceptional performance and operational excellence.",
			},
			Icon:          "building-office",
			Subcategories: []models.SubCategory{},
		},
		{
			ID:   "employee",
			Name: models.BilingualText{AR: "الموظف المتميز", EN: "Outstanding Employee"},
			Description: models.BilingualText{
				AR: "تقدير الموظفين الذين أظهروا تميّزاً في أدائهم ومساهماتهم المتميّزة.",
				EN: "Acknowledging employees who demonstrated excellence in their performance and outstanding contributions.",
			},
			Icon: "user",
			Subcategories: []models.SubCategory{
				{ID: "administrative", Name: models.BilingualText{AR: "إداري", EN: "Administrative"}},
				{ID: "specialist", Name: models.BilingualText{AR: "تخصصي", EN: "Specialist"}},
				{ID: "technical", Name: models.BilingualText{AR: "فني", EN: "Technical"}},
				{ID: "customer_service", Name: models.BilingualText{AR: "خدمة متعاملين", EN: "Customer Service"}},
				{ID: "unsung_hero", Name: models.BilingualText{AR: "جندي مجهول", EN: "Unsung Hero"}},
				{ID: "leader", Name: models.BilingualText{AR: "قائد", EN: "Leader"}},
				{ID: "future_leader", Name: models.BilingualText{AR: "قائد مستقبلي", EN: "Future Leader"}},
			},
		},
		{
			ID:   "project",
			Name: models.BilingualText{AR: "المشروع المتميز", EN: "Outstanding Project"},
			Description: models.BilingualText{
				AR: "الاحتفاء بالمشاريع المبتكرة التي حققت نتائج ملموسة وأثراً إيجابياً.",
				EN: "Celebrating innovative projects that achieved tangible results and positive impact.",
			},
			Icon:          "rocket-launch",
			Subcategories: []models.SubCategory{},
		},
		{
			ID:   "green",
			Name: models.BilingualText{AR: "الممارسات الخضراء", EN: "Green Practices"},
			Description: models.BilingualText{
				AR: "تكريم المبادرات والممارسات التي تعزز الاستدامة البيئية والتميّز الأخضر.",
				EN: "Honoring initiatives and practices that promote environmental sustainability and green excellence.",
			},
			Icon:          "globe",
			Subcategories: []models.SubCategory{},
		},
		{
			ID:   "knowledge",
			Name: models.BilingualText{AR: "إدارة المعرفة", EN: "Knowledge Management"},
			Description: models.BilingualText{
				AR: "تقدير الجهود المتميّزة في إدارة المعرفة ونقلها ومشاركتها داخل المؤسسة.",
				EN: "Recognizing distinguished efforts in managing, transferring, and sharing knowledge within the organization.",
			},
			Icon:          "book-open",
			Subcategories: []models.SubCategory{},
		},
	}
}

// CategoryByID retrieves a single category by its id.
func CategoryByID(id string) (models.Category, bool) {
	for _, cat := range Categories() {
		if cat.ID == id {
			return cat, true
		}
	}
	return models.Category{}, false
}

// About returns the "About the Award" section content.
func About() models.AboutContent {
	return models.AboutContent{
		SectionTitle: models.BilingualText{AR: "عن الجائزة", EN: "About the Award"},
		Cards: []models.AboutCard{
			{
				Key:   "mission",
				Title: models.BilingualText{AR: "الرسالة", EN: "Mission"},
				Text: models.BilingualText{
					AR: "تعزيز ثقافة التميز والإبداع والابتكار في الشارقة لإدارة الأصول من خلال تحفيز الأداء المتميز والممارسات الرائدة.",
					EN: "Promoting a culture of excellence, creativity, and innovation at Sharjah Asset Management by incentivizing outstanding performance and leading practices.",
				},
			},
			{
				Key:   "vision",
				Title: models.BilingualText{AR: "الرؤية", EN: "Vision"},
				Text: models.BilingualText{
					AR: "أن تكون جائزة سام نجوم للتميز المرجعية الأولى في تقييم ومكافأة التميز المؤسسي على مستوى الإمارة.",
					EN: "To position the SAM Stars Excellence Award as the premier benchmark for evaluating and rewarding institutional excellence across the emirate.",
				},
			},
			{
				Key:   "values",
				Title: models.BilingualText{AR: "القيم", EN: "Values"},
				Text: models.BilingualText{
					AR: "الشفافية، العدالة، الابتكار، التميز، الاستدامة.",
					EN: "Transparency, Fairness, Innovation, Excellence, Sustainability.",
				},
			},
		},
	}
}

// Steps returns the 6 application steps.
func Steps() models.StepsContent {
	return models.StepsContent{
		SectionTitle: models.BilingualText{AR: "خطوات التقديم", EN: "How to Apply"},
		Steps: []models.StepItem{
			{
				Number: 1,
				Title:  models.BilingualText{AR: "الاختيار", EN: "Select"},
				Description: models.BilingualText{
					AR: "اختر الفئة المناسبة لتقديم طلبك.",
					EN: "Choose the appropriate category for your application.",
				},
			},
			{
				Number: 2,
				Title:  models.BilingualText{AR: "الفهم", EN: "Understand"},
				Description: models.BilingualText{
					AR: "تعرّف على معايير التقييم والأوزان الخاصة بالفئة.",
					EN: "Learn about the evaluation criteria and weights for your category.",
				},
			},
			{
				Number: 3,
				Title:  models.BilingualText{AR: "التجهيز", EN: "Prepare"},
				Description: models.BilingualText{
					AR: "جهّز المستندات والأدلة المطلوبة.",
					EN: "Gather the required documents and evidence.",
				},
			},
			{
				Number: 4,
				Title:  models.BilingualText{AR: "التجميع", EN: "Compile"},
				Description: models.BilingualText{
					AR: "اجمع جميع المعلومات في نموذج التقديم.",
					EN: "Compile all information into the application form.",
				},
			},
			{
				Number: 5,
				Title:  models.BilingualText{AR: "المراجعة", EN: "Review"},
				Description: models.BilingualText{
					AR: "راجع طلبك بعناية قبل الإرسال.",
					EN: "Carefully review your application before submission.",
				},
			},
			{
				Number: 6,
				Title:  models.BilingualText{AR: "التقديم", EN: "Submit"},
				Description: models.BilingualText{
					AR: "أرسل طلبك وتابع حالته عبر البوابة.",
					EN: "Submit your application and track its status through the portal.",
				},
			},
		},
	}
}

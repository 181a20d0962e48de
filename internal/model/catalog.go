package model

// Catalog is the questionnaire definition, fixed for the process lifetime.
// Question IDs form a single flat namespace: the answer store and the
// submission payload are keyed by them, so they must be globally unique
// across sections and conditional groups.
var Catalog = []Section{
	{
		ID:          "basic",
		Title:       "About You",
		Description: "Let's get to know you! Just a few basic questions.",
		Questions: []Question{
			{ID: "name", Label: "What's your name?", Kind: TextQuestion, Placeholder: "John"},
			{ID: "age", Label: "How old are you?", Kind: NumberQuestion, Placeholder: "24"},
			{ID: "university", Label: "Which university did/do you attend?", Kind: TextQuestion, Placeholder: "MIT, Stanford..."},
			{ID: "major", Label: "What is/was your major?", Kind: TextQuestion, Placeholder: "Computer Science, Business Admin, Medicine, Law, Design, Engineering..."},
			{ID: "grad_year", Label: "When did/will you graduate?", Kind: TextQuestion, Placeholder: "2024, June 2025..."},
			{ID: "location", Label: "Where are you currently living?", Kind: TextQuestion, Placeholder: "Istanbul, Turkey"},
			{ID: "relocation_ok", Label: "Would you be open to relocating abroad?", Kind: SelectQuestion, Options: []string{"yes", "no", "maybe"}},
		},
	},
	{
		ID:          "current",
		Title:       "Current Situation",
		Description: "Tell us about your current work situation.",
		Questions: []Question{
			{ID: "current_job", Label: "What are you currently doing?", Kind: TextQuestion, Placeholder: "Data Analyst / Student / Unemployed / Doctor / Designer..."},
			{
				ID:          "primary_industry",
				Label:       "Which industry best describes your career focus?",
				Kind:        SelectQuestion,
				Options:     []string{"Technology & Engineering", "Business & Finance", "Healthcare & Medicine", "Creative & Design", "Education", "Legal", "Other"},
				Description: "This helps us personalize your career roadmap",
			},
		},
		ConditionalGroups: []ConditionalGroup{
			{
				Name:            "working",
				Trigger:         EmploymentTrigger,
				SourceID:        "current_job",
				NegativeMarkers: []string{"student", "unemployed", "none", "no"},
				Questions: []Question{
					{ID: "current_salary", Label: "What's your current salary? (USD/year)", Kind: TextQuestion, Placeholder: "30000", Default: "0"},
					{ID: "job_satisfaction", Label: "How satisfied are you with your current job?", Kind: SelectQuestion, Options: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}, Default: "0"},
					{ID: "years_current_job", Label: "How long have you been in this job?", Kind: TextQuestion, Placeholder: "2 years", Default: "0"},
					{ID: "industry", Label: "What specific industry/sector are you in?", Kind: TextQuestion, Placeholder: "Software, Investment Banking, Surgery, UX Design, Consulting...", Default: "none"},
					{ID: "company_size", Label: "Company size?", Kind: SelectQuestion, Options: []string{"startup", "medium", "large"}, Default: "none"},
				},
			},
		},
	},
	{
		ID:          "skills",
		Title:       "Skills & Experience",
		Description: "Optional: Share your professional skills to get more tailored recommendations.",
		Questions: []Question{
			{
				ID:          "share_skills",
				Label:       "Would you like to share your professional skills?",
				Kind:        SelectQuestion,
				Options:     []string{"yes", "no", "skip this section"},
				Description: "This is optional but helps us give better career advice",
			},
		},
		ConditionalGroups: []ConditionalGroup{
			{
				Name:            "interested",
				Trigger:         InterestTrigger,
				SourceID:        "share_skills",
				NegativeMarkers: []string{"no", "skip this section"},
				Questions: []Question{
					{
						ID:          "key_skills",
						Label:       "What are your key professional skills?",
						Kind:        TextQuestion,
						Placeholder: "Python, Excel, Surgery, Design Tools, Public Speaking, Financial Analysis...",
						Description: "List your most relevant skills for your career goals",
					},
					{ID: "skill_level", Label: "Overall, how would you rate your skill level?", Kind: SelectQuestion, Options: []string{"beginner", "intermediate", "advanced", "expert"}},
					{
						ID:          "tools_platforms",
						Label:       "Any specific tools or platforms you use?",
						Kind:        TextQuestion,
						Placeholder: "Figma, SAP, AWS, Salesforce, Adobe Suite, AutoCAD...",
						Description: "Industry-specific tools you're proficient with",
					},
					{ID: "certifications", Label: "Any certifications, licenses, or completed courses?", Kind: TextQuestion, Placeholder: "CPA, AWS Certified, Medical License, PMP, Design Bootcamp..."},
					{ID: "portfolio_work", Label: "Do you have a portfolio, published work, or notable projects?", Kind: TextQuestion, Placeholder: "GitHub projects, Design portfolio, Published papers, Case studies..."},
				},
			},
		},
	},
	{
		ID:          "education",
		Title:       "Education & Master's Decision",
		Description: "Unsure about doing a master's? We'll help you decide.",
		Questions: []Question{
			{
				ID:          "considering_masters",
				Label:       "Are you considering a master's degree?",
				Kind:        SelectQuestion,
				Options:     []string{"definitely doing it", "yes but undecided", "maybe", "no", "never thought about it"},
				Description: "Be honest - if you're undecided, we'll help!",
			},
		},
		ConditionalGroups: []ConditionalGroup{
			{
				Name:            "interested",
				Trigger:         InterestTrigger,
				SourceID:        "considering_masters",
				NegativeMarkers: []string{"no", "never thought about it"},
				Questions: []Question{
					{
						ID:          "masters_fields_interested",
						Label:       "What fields are you interested in? (comma-separated)",
						Kind:        TextQuestion,
						Placeholder: "MBA, Data Science, Medicine, Law, Design, Engineering, Public Health...",
						Description: "List all fields you're considering",
					},
					{
						ID:      "masters_location_preference",
						Label:   "Where would you like to do your master's?",
						Kind:    SelectQuestion,
						Options: []string{"Turkey", "Europe", "USA", "Canada", "UK", "Online/Remote", "Doesn't matter", "Undecided"},
					},
					{ID: "masters_program_language", Label: "Preferred program language?", Kind: SelectQuestion, Options: []string{"English", "Turkish", "Doesn't matter"}},
					{
						ID:      "masters_type",
						Label:   "What type of master's are you considering?",
						Kind:    SelectQuestion,
						Options: []string{"Thesis (research)", "Non-thesis (coursework)", "Professional", "Undecided", "Doesn't matter"},
					},
					{
						ID:      "can_afford_masters",
						Label:   "Can you afford a master's program?",
						Kind:    SelectQuestion,
						Options: []string{"yes, fully", "partially, need scholarship", "no, need full scholarship", "undecided/need to know costs"},
					},
					{ID: "masters_timeline", Label: "When are you planning to start?", Kind: SelectQuestion, Options: []string{"this year", "next year", "2+ years", "flexible", "undecided"}},
					{
						ID:      "masters_work_while_study",
						Label:   "Do you plan to work while studying?",
						Kind:    SelectQuestion,
						Options: []string{"yes, full-time", "yes, part-time", "no, full-time student", "undecided"},
					},
					{
						ID:      "masters_priority",
						Label:   "What's your top priority for a master's?",
						Kind:    SelectQuestion,
						Options: []string{"career boost", "salary increase", "knowledge/skills", "research", "networking", "prestige", "visa/immigration"},
					},
					{
						ID:          "masters_specific_programs",
						Label:       "Any specific programs you're considering?",
						Kind:        TextQuestion,
						Placeholder: "Stanford MS CS, ETH Zurich DS, MIT EECS...",
						Description: "List any programs you've already researched",
					},
					{
						ID:          "masters_concerns",
						Label:       "What are your main concerns about doing a master's?",
						Kind:        TextQuestion,
						Placeholder: "Cost, time, career gap, ROI, opportunity cost...",
						Description: "Be specific - we'll address each concern",
					},
				},
			},
		},
	},
	{
		ID:          "goals",
		Title:       "Career Goals",
		Description: "Where do you see yourself in the future?",
		Questions: []Question{
			{ID: "dream_job", Label: "What's your dream job or role?", Kind: TextQuestion, Placeholder: "Senior Consultant, Surgeon, Creative Director, Data Scientist, Partner at Law Firm..."},
			{ID: "dream_salary", Label: "What's your target salary? (USD/year)", Kind: TextQuestion, Placeholder: "150000"},
			{ID: "target_years", Label: "In how many years do you want to achieve this?", Kind: TextQuestion, Placeholder: "3-5 years"},
			{
				ID:      "career_path_preference",
				Label:   "Which career path interests you most?",
				Kind:    SelectQuestion,
				Options: []string{"big tech", "consulting", "healthcare", "creative agency", "startup", "freelance", "entrepreneur", "academia", "legal firm", "don't know yet"},
			},
			{ID: "willing_to_study", Label: "Are you willing to invest time/money in education?", Kind: SelectQuestion, Options: []string{"yes, definitely", "maybe", "probably not"}},
		},
	},
	{
		ID:          "finances",
		Title:       "Financial Situation",
		Description: "Help us understand your financial situation and goals.",
		Questions: []Question{
			{ID: "monthly_expenses", Label: "What are your monthly expenses? (USD)", Kind: TextQuestion, Placeholder: "1500"},
			{ID: "savings", Label: "How much do you currently have in savings? (USD)", Kind: TextQuestion, Placeholder: "10000, or 0 if none"},
			{ID: "monthly_savings_goal", Label: "How much would you like to save each month?", Kind: TextQuestion, Placeholder: "500"},
			{ID: "debts", Label: "Do you have any student loans or debts?", Kind: TextQuestion, Placeholder: "0, 5000, none..."},
			{ID: "family_support", Label: "Do you receive financial support from family?", Kind: SelectQuestion, Options: []string{"yes", "partial", "no"}},
			{ID: "risk_tolerance", Label: "How comfortable are you with investment risks?", Kind: SelectQuestion, Options: []string{"conservative (low risk)", "moderate", "aggressive (high risk)"}},
		},
	},
	{
		ID:          "fire",
		Title:       "FIRE Goals",
		Description: "Let's talk about your retirement and financial independence goals.",
		Questions: []Question{
			{ID: "retire_age", Label: "At what age would you like to retire?", Kind: TextQuestion, Placeholder: "45, 50, 65..."},
			{ID: "fire_lifestyle", Label: "What kind of retirement lifestyle do you envision?", Kind: SelectQuestion, Options: []string{"lean FIRE (minimal expenses)", "regular FIRE (comfortable)", "fat FIRE (luxurious)"}},
			{ID: "retirement_location", Label: "Where would you like to retire?", Kind: TextQuestion, Placeholder: "Bali, Portugal, same city..."},
			{ID: "passive_income_interest", Label: "How interested are you in building passive income?", Kind: SelectQuestion, Options: []string{"very interested", "somewhat interested", "not really interested"}},
		},
	},
	{
		ID:          "side",
		Title:       "Side Income Ideas",
		Description: "Let's explore ways you could increase your income.",
		Questions: []Question{
			{ID: "time_for_side", Label: "How many hours per week could you dedicate to side projects?", Kind: TextQuestion, Placeholder: "5-10 hours"},
			{ID: "side_interests", Label: "What topics or activities are you passionate about?", Kind: TextQuestion, Placeholder: "teaching, writing, coding, design..."},
			{
				ID:      "freelance_exp",
				Label:   "Have you done any freelance work before?",
				Kind:    SelectQuestion,
				Options: []string{"yes, currently doing it", "tried it before", "never tried it", "want to start"},
			},
			{
				ID:      "preferred_side_income",
				Label:   "What type of side income interests you most?",
				Kind:    SelectQuestion,
				Options: []string{"freelancing", "content creation", "building products/SaaS", "teaching/courses", "consulting", "investments", "open to anything"},
			},
			{ID: "monthly_side_income_goal", Label: "What's your monthly side income goal? (USD)", Kind: TextQuestion, Placeholder: "500, 1000, 2000..."},
		},
	},
	{
		ID:          "constraints",
		Title:       "Constraints & Preferences",
		Description: "Help us understand your situation and what works best for you.",
		Questions: []Question{
			{ID: "time_commit", Label: "How many hours per week can you dedicate to career development?", Kind: TextQuestion, Placeholder: "10-15 hours"},
			{ID: "learning_style", Label: "How do you learn best?", Kind: SelectQuestion, Options: []string{"hands-on projects", "structured courses", "reading/self-study", "bootcamps", "mentorship"}},
			{ID: "work_life_balance", Label: "How important is work-life balance to you?", Kind: SelectQuestion, Options: []string{"very important", "somewhat important", "not a priority right now"}},
			{ID: "biggest_obstacle", Label: "What's your biggest challenge or obstacle right now?", Kind: TextQuestion, Placeholder: "lack of time, money, skills, direction..."},
			{ID: "need_most", Label: "What would help you most right now?", Kind: SelectQuestion, Options: []string{"clear roadmap", "skill development plan", "financial strategy", "help making decisions", "all of the above"}},
		},
	},
	{
		ID:          "interests",
		Title:       "Interests & Passions",
		Description: "What truly excites you? Let's explore career paths aligned with your passions!",
		Questions: []Question{
			{
				ID:          "passion_topics",
				Label:       "What topics or fields genuinely excite you?",
				Kind:        TextQuestion,
				Placeholder: "AI/ML, blockchain, game dev, UI/UX design, climate tech, fintech, biotech...",
				Description: "Think beyond your current skills - what would you love to work on?",
			},
			{
				ID:          "flow_activities",
				Label:       "What kind of work makes you lose track of time?",
				Kind:        TextQuestion,
				Placeholder: "building apps, analyzing data, teaching, designing, solving puzzles...",
				Description: "When do you enter a \"flow state\"?",
			},
			{
				ID:          "dream_projects",
				Label:       "If you had 6 months and no restrictions, what would you build or work on?",
				Kind:        TextQuestion,
				Placeholder: "an AI app, a game, a startup, write a book, contribute to open source...",
				Description: "Dream big - what passion project comes to mind?",
			},
			{
				ID:          "role_models",
				Label:       "Any people, companies, or projects that inspire you?",
				Kind:        TextQuestion,
				Placeholder: "OpenAI, indie hackers, Figma, specific YouTube creators, researchers...",
				Description: "Who or what do you look up to professionally?",
			},
		},
	},
}

// AllQuestionIDs returns every question identifier in the catalog, base and
// conditional alike, in declaration order.
func AllQuestionIDs() []string {
	var ids []string
	for _, sec := range Catalog {
		for _, q := range sec.Questions {
			ids = append(ids, q.ID)
		}
		for _, g := range sec.ConditionalGroups {
			for _, q := range g.Questions {
				ids = append(ids, q.ID)
			}
		}
	}
	return ids
}

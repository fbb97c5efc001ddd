package content

// Default returns the built-in site content. Each call returns a fresh copy.
func Default() *Site {
	return &Site{
		Hero: Hero{
			Headline:      []string{"WE", "BUILD", "FOCUSED", "BUSINESSES."},
			RotatingWords: []string{"FOCUSED", "DURABLE", "REAL"},
			Subtext:       "Operator-led · Long-term · Deliberate",
		},
		Portfolio: []PortfolioItem{
			{
				Slug:            "dtla-print",
				Name:            "DTLA Print",
				Tagline:         "Custom embroidery & screen printing",
				WhatItDoes:      "Operates a high-quality custom embroidery and screen printing service for businesses and individuals in Downtown LA and beyond.",
				ProblemItSolves: "Businesses need reliable, high-quality custom apparel and branding solutions with fast turnaround times.",
				CometRole:       "Full operator. Comet manages production, fulfillment, and client relationships end-to-end.",
				Image:           "/portfolio/dtlaprint.png",
				Screenshot:      "/portfolio/dtlaprint.png",
				URL:             "https://dtlaprint.com",
				Industry:        "Apparel",
				Location:        "Los Angeles, CA",
			},
			{
				Slug:            "kases",
				Name:            "Kases",
				Tagline:         "Premium phone cases & accessories",
				WhatItDoes:      "Designs and sells premium phone cases and tech accessories through a direct-to-consumer storefront.",
				ProblemItSolves: "Consumers want stylish, durable phone protection that stands out from generic mass-market options.",
				CometRole:       "Built and operated from scratch. Comet handles product design, sourcing, and e-commerce operations.",
				Image:           "/portfolio/kases.png",
				Screenshot:      "/portfolio/kases.png",
				URL:             "https://kases.com",
				Industry:        "Consumer goods",
			},
			{
				Slug:            "merch-karma",
				Name:            "Merch Karma",
				Tagline:         "Branded merchandise solutions",
				WhatItDoes:      "Provides end-to-end branded merchandise services — from design to production to fulfillment — for companies of all sizes.",
				ProblemItSolves: "Companies struggle to source consistent, high-quality branded merchandise without managing multiple vendors.",
				CometRole:       "Full-stack operator. Comet manages the entire merchandise pipeline in-house.",
				Image:           "/portfolio/merchkarma.png",
				Screenshot:      "/portfolio/merchkarma.png",
				URL:             "https://merchkarma.com",
				Services:        []string{"Design", "Production", "Fulfillment"},
			},
			{
				Slug:            "shop-titan",
				Name:            "Shop Titan",
				Tagline:         "E-commerce platform & tools",
				WhatItDoes:      "Powers online storefronts with integrated inventory, order management, and analytics tools for growing brands.",
				ProblemItSolves: "Growing e-commerce brands need scalable infrastructure without the complexity of enterprise platforms.",
				CometRole:       "Internal product team. Comet builds and maintains the platform to serve portfolio brands.",
				Image:           "/portfolio/shoptitan.png",
				Screenshot:      "/portfolio/shoptitan.png",
				URL:             "https://shoptitan.app",
				Industry:        "Software",
			},
			{
				Slug:            "mika-jaymes",
				Name:            "Mika Jaymes",
				Tagline:         "Luxury fashion brand",
				WhatItDoes:      "Curates and sells luxury fashion collections through a premium direct-to-consumer experience.",
				ProblemItSolves: "Fashion-forward consumers want access to curated luxury pieces without traditional retail markups.",
				CometRole:       "Brand builder and operator. Comet manages creative direction, sourcing, and DTC operations.",
				Image:           "/portfolio/mikajaymes.png",
				Screenshot:      "/portfolio/mikajaymes.png",
				URL:             "https://mikajaymes.com",
				Industry:        "Fashion",
			},
			{
				Slug:            "bluestar-cp",
				Name:            "BlueStar CP",
				Tagline:         "Multifamily property management",
				WhatItDoes:      "Manages multifamily residential properties with a focus on tenant experience and operational efficiency.",
				ProblemItSolves: "Multifamily property owners need professional management that maximizes occupancy while maintaining quality standards.",
				CometRole:       "Upcoming project. Comet will build and operate the full property management platform.",
				Image:           "/portfolio/bluestarcp.png",
				Screenshot:      "/portfolio/bluestarcp.png",
				URL:             "https://bluestarcp.com",
				Industry:        "Real estate",
			},
		},
		Philosophy: Philosophy{
			Heading: "Philosophy",
			Statements: []Statement{
				{Text: "We build."},
				{Text: "We operate."},
				{Text: "We focus."},
				{Text: "We remove noise.", Bold: true},
			},
			Chapters: []Chapter{
				{Title: "We Build", Subtitle: "INFRASTRUCTURE", Color: "#3b82f6"},
				{Title: "We Operate", Subtitle: "AT SCALE", Color: "#8b5cf6"},
				{Title: "We Focus", Subtitle: "ON OUTCOMES", Color: "#ec4899"},
				{Title: "We Compound", Subtitle: "CONSISTENTLY", Color: "#f59e0b"},
			},
		},
		Principles: []Principle{
			{Number: "01", Title: "We don't chase trends", Description: "We build what's real. Not what's trending."},
			{Number: "02", Title: "We hire operators", Description: "Not consultants. People who build and ship."},
			{Number: "03", Title: "We optimize for durability", Description: "Not speed. Businesses that last decades."},
			{Number: "04", Title: "We remove noise", Description: "To find signal. Clarity through elimination."},
		},
		About: About{
			Heading:        "Who We Are",
			Story:          "We are an operator-led holding company that builds and operates focused businesses for the long term. We don't chase trends or buzzwords—we build what's real.",
			Mission:        "To create durable, valuable businesses that compound over time by combining operational excellence with clear strategic thinking.",
			OperatingModel: "We acquire, build, and operate businesses end-to-end. Every company in our portfolio receives hands-on operational support, strategic direction, and the resources needed to scale sustainably.",
			Stats: []Stat{
				{Label: "Years Operating", Value: "10+"},
				{Label: "Portfolio Companies", Value: "6"},
				{Label: "Industries", Value: "4"},
			},
		},
		Team: []TeamMember{
			{Name: "Alex Chen", Role: "Managing Partner"},
			{Name: "Sarah Martinez", Role: "Operating Partner"},
			{Name: "Michael Park", Role: "Operating Partner"},
		},
		Insights: []Insight{
			{Title: "The Case Against Growth at All Costs", Date: "2025"},
			{Title: "Building for the Next Decade, Not the Next Round", Date: "2025"},
			{Title: "Why We Don't Do Vanity Metrics", Date: "2024"},
		},
		Contact: Contact{
			Label:    "Start a conversation.",
			Sub:      "Serious inquiries only.",
			Email:    "hello@thecometcompanies.com",
			Subjects: []string{"General Inquiry", "Partnership", "Acquisition", "Press"},
		},
		Nav: []NavItem{
			{Label: "Home", Anchor: "home"},
			{Label: "Portfolio", Anchor: "portfolio"},
			{Label: "Philosophy", Anchor: "philosophy"},
			{Label: "About", Anchor: "about"},
			{Label: "Contact", Anchor: "contact"},
		},
		Footer: Footer{
			Copyright: "The Comet Companies",
			Tagline:   "Built with intent.",
		},
		Changelog: []Changelog{
			{
				Version: "1.1.0",
				Date:    "2025-06-02",
				Notes:   "- Pinned philosophy sequence with chapter colors.\n- Leadership grid and counted stats in **About**.",
			},
			{
				Version: "1.0.0",
				Date:    "2025-03-14",
				Notes:   "- Launch: hero, portfolio card stack, contact relay.",
			},
		},
	}
}

package service

import "github.com/mmi-portfolio/backend/internal/model"

// DemoProjects returns the hardcoded listing served when the store is not
// usable. Each call returns fresh values.
func DemoProjects() []*model.Project {
	return []*model.Project{
		{
			Title:            "Mobile Banking Redesign",
			Slug:             "mobile-banking-redesign",
			Category:         "UI/UX",
			Tags:             []string{"Fintech", "Design System", "Accessibility"},
			ShortDescription: "Improved onboarding and clarity with a consistent design system.",
			Description:      "Case study covering research synthesis, information architecture, and high-fidelity prototypes.",
			Images: []string{
				"https://images.unsplash.com/photo-1556745753-b2904692b3cd?w=1200&q=80&auto=format&fit=crop",
			},
			Tools:     []string{"Figma", "FigJam", "Illustrator"},
			Highlight: true,
		},
		{
			Title:            "Brand Identity for Café Pixel",
			Slug:             "cafe-pixel-branding",
			Category:         "Branding",
			Tags:             []string{"Logo", "Visual Identity", "Print"},
			ShortDescription: "Retro-digital coffee brand with pixel-inspired mark and patterns.",
			Description:      "From moodboards to logo grids, color system, and packaging mockups.",
			Images: []string{
				"https://images.unsplash.com/photo-1511920170033-f8396924c348?w=1200&q=80&auto=format&fit=crop",
			},
			Tools:     []string{"Illustrator", "Photoshop"},
			Highlight: false,
		},
		{
			Title:            "Interactive Exhibition Microsite",
			Slug:             "exhibition-microsite",
			Category:         "Web Design",
			Tags:             []string{"WebGL", "Motion", "Parallax"},
			ShortDescription: "Smooth-scrolling site with animated illustrations and parallax.",
			Description:      "Prototype to final: motion studies, component library, and performance tuning.",
			Images: []string{
				"https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=1200&q=80&auto=format&fit=crop",
			},
			Tools:     []string{"Figma", "After Effects"},
			Highlight: false,
		},
	}
}

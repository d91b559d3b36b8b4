package seed

import "gamevault/backend/internal/content"

// Catalog is the sample content shipped with the project.
var Catalog = []Entry{
	{
		Game: content.GameFields{
			Title:             "Cyberpunk 2077",
			Company:           "CD Projekt Red",
			Genre:             "Action RPG",
			ReleaseDate:       "2020-12-10",
			CoverImage:        "/images/cyberpunk.jpg",
			Storyline:         "In the megalopolis of Night City, you play as V, a mercenary outlaw chasing a one-of-a-kind implant that holds the key to immortality.",
			RecommendedFor:    "Fans of deep narratives, Open world explorers, Sci-fi enthusiasts",
			NotRecommendedFor: "Players sensitive to bugs, Those looking for a simple arcade shooter",
		},
		Review: &content.ReviewFields{
			Scores:          content.Scores{Story: 5, Graphics: 5, Gameplay: 4, Quality: 4},
			StoryComment:    "The Johnny Silverhand storyline is gripping and emotional.",
			GraphicsComment: "Night City is one of the best looking open worlds around, especially with ray tracing.",
			GameplayComment: "Versatile combat, though enemy AI can feel simplistic.",
			QualityComment:  "Much improved since launch; few bugs remain and performance is solid.",
			OverallReview:   "After years of updates the game finally delivers on its promise: a living city and one of the best stories in modern gaming.",
		},
	},
	{
		Game: content.GameFields{
			Title:             "Elden Ring",
			Company:           "FromSoftware",
			Genre:             "Action RPG",
			ReleaseDate:       "2022-02-25",
			CoverImage:        "/images/elden-ring.jpg",
			Storyline:         "Rise, Tarnished, and be guided by grace to brandish the power of the Elden Ring and become an Elden Lord in the Lands Between.",
			RecommendedFor:    "Dark Souls veterans, Exploration lovers, Players who love a challenge",
			NotRecommendedFor: "Casual gamers looking for an easy time, Players who need quest markers",
		},
		Review: &content.ReviewFields{
			Scores:          content.Scores{Story: 4, Graphics: 5, Gameplay: 5, Quality: 4},
			StoryComment:    "Deep lore, but most of it hides in item descriptions.",
			GraphicsComment: "Outstanding art direction even where raw fidelity is not class-leading.",
			GameplayComment: "Tight, punishing and rewarding combat with endless build variety.",
			QualityComment:  "Runs well on current hardware with minor stutter on older machines.",
			OverallReview:   "A masterful evolution of the Souls formula with a dense, mysterious open world.",
		},
	},
	{
		Game: content.GameFields{
			Title:             "God of War Ragnarok",
			Company:           "Santa Monica Studio",
			Genre:             "Action Adventure",
			ReleaseDate:       "2022-11-09",
			CoverImage:        "/images/god-of-war.jpg",
			Storyline:         "Fimbulwinter is well underway. Kratos and Atreus journey across the Nine Realms as Asgard prepares for the prophesied battle that will end the world.",
			RecommendedFor:    "Story-driven action fans, Mythology geeks, Those wanting cinematic spectacle",
			NotRecommendedFor: "Players wanting open-ended unguided exploration",
		},
		Review: &content.ReviewFields{
			Scores:          content.Scores{Story: 5, Graphics: 5, Gameplay: 5, Quality: 5},
			StoryComment:    "An emotional conclusion to the Norse saga centred on father and son.",
			GraphicsComment: "Breathtaking realms and detailed characters with flawless performance.",
			GameplayComment: "Brutal, satisfying combat with a more useful Atreus.",
			QualityComment:  "Polished from start to finish.",
			OverallReview:   "Surpasses its predecessor in nearly every way.",
		},
	},
}

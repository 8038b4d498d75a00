package content

import "fmt"

// actLore maps well-known tier titles to their role-immersion flavor lines.
// Titles without a dedicated pool fall back to DefaultActLore.
var actLore = map[string][]string{
	"Seer": {
		"You sit in front of a crystal ball, the flickering candlelight casting long shadows.",
		"You read the tea leaves of a local baker, whispering of a fortune they don't yet understand.",
		"The spirit world whispers to you; you listen carefully, maintaining the stoic face of a Seer.",
	},
	"Clown": {
		"You perform a perfect somersault, your exaggerated smile masking the sharp focus in your eyes.",
		"You juggle three daggers for a crowd, each catch a precise movement of balance.",
		"Behind the makeup, you observe the world's absurdity, embracing the role of the fool.",
	},
	"Magician": {
		"You snap your fingers, and a small flame dances across your knuckles before vanishing.",
		"You pull a bouquet of paper roses from an empty hat, much to the delight of the street orphans.",
		"The boundary between trickery and mysticism blurs as you perform your daily 'miracles'.",
	},
	"Marauder": {
		"You slip through the shadows, your fingers light as air as you 'borrow' a trinket from a corrupt noble.",
		"You observe a target from the rooftops, calculating the exact moment their guard will drop.",
		"The thrill of the theft pulses in your veins, but you remain as silent as a ghost.",
	},
	"Apprentice": {
		"You touch the surface of a locked door, sensing the intricate mechanism with your spirit vision.",
		"You meticulously record the patterns of the stars, seeking the hidden exits of the world.",
		"You practice the art of 'arrival,' stepping through a threshold that wasn't there a moment ago.",
	},
	"Bard": {
		"You sing a hymn to the Eternal Blazing Sun, your voice carrying a warmth that calms the weary.",
		"Your music weaves a tapestry of light, warding off the creeping chill of the night.",
		"You praise the dawn, each note a prayer to the divinity that fuels your spirit.",
	},
}

// ActLore returns the flavor pool for a tier title.
func ActLore(title string) []string {
	if pool, ok := actLore[title]; ok {
		return pool
	}
	return []string{
		fmt.Sprintf("You immerse yourself in the life of a %s, strictly following the principles of the role.", title),
		fmt.Sprintf("You perform the daily duties of a %s, feeling the potion in your blood begin to settle.", title),
		fmt.Sprintf("The principles of a %s are clear to you now; you act with conviction and purpose.", title),
	}
}

// FailureLore is the flavor pool for standard expedition failures.
var FailureLore = []string{
	"The fog thickened, and you heard whispers in a language that doesn't exist.",
	"A pair of vertical pupils watched you from the darkness between the trees.",
	"You found a mirror in the ruins, but the reflection didn't move when you did.",
	"The walls began to bleed a silver liquid, and the air grew thin.",
	"You stepped on a shadow that felt like flesh. You didn't stay to find out what it was.",
}

// CriticalLore is the flavor pool for critical expedition failures.
var CriticalLore = []string{
	"The stars moved. No, the sky itself blinked. You have seen something no mortal should witness.",
	"You felt a cold hand wrap around your heart, squeezing tight. A piece of your soul stayed behind in that place.",
	"The Ravings of the Abyss echoed in your mind, shattering your perception of reality.",
	"You encountered a figure with no face, wearing your own clothes. It smiled with its entire body.",
}

package seed

import (
	"log"

	"yarnhog/internal/models"

	"gorm.io/gorm"
)

// builtinTutorials is the stitch catalog every install ships with. The
// shortcut is the standard pattern abbreviation shown next to the name.
var builtinTutorials = []models.Tutorial{
	{
		Name:        "Chain",
		Shortcut:    "ch",
		Description: "The foundation of nearly every pattern. Yarn over and pull through the loop on your hook.",
		VideoURL:    "https://www.youtube.com/watch?v=kb9JGHB6Xvg",
	},
	{
		Name:        "Slip stitch",
		Shortcut:    "sl st",
		Description: "Joins rounds and moves across stitches without adding height.",
		VideoURL:    "https://www.youtube.com/watch?v=8cV3zoOSEvs",
	},
	{
		Name:        "Single crochet",
		Shortcut:    "sc",
		Description: "A short, dense stitch. Insert hook, yarn over, pull up a loop, yarn over, pull through both loops.",
		VideoURL:    "https://www.youtube.com/watch?v=aAxGTnVNJiE",
	},
	{
		Name:        "Half double crochet",
		Shortcut:    "hdc",
		Description: "Between single and double in height. Yarn over before inserting the hook, then pull through all three loops.",
		VideoURL:    "https://www.youtube.com/watch?v=12kWTG3GLC4",
	},
	{
		Name:        "Double crochet",
		Shortcut:    "dc",
		Description: "A tall, fast stitch worked with one yarn over and two pull-throughs.",
		VideoURL:    "https://www.youtube.com/watch?v=c8QIif3hu3g",
	},
	{
		Name:        "Treble crochet",
		Shortcut:    "tr",
		Description: "Two yarn overs for an extra-tall stitch with open drape.",
		VideoURL:    "https://www.youtube.com/watch?v=1LqKNDmRK0w",
	},
	{
		Name:        "Magic ring",
		Shortcut:    "mr",
		Description: "An adjustable starting loop for working in the round with no centre hole.",
		VideoURL:    "https://www.youtube.com/watch?v=NpF9ZenYakA",
	},
	{
		Name:        "Increase",
		Shortcut:    "inc",
		Description: "Two stitches worked into the same stitch to widen the fabric.",
		VideoURL:    "https://www.youtube.com/watch?v=p0Y2Hcq89WU",
	},
	{
		Name:        "Invisible decrease",
		Shortcut:    "dec",
		Description: "Joins two stitches through the front loops only, leaving no gap in amigurumi.",
		VideoURL:    "https://www.youtube.com/watch?v=Ddo6aBHS2FA",
	},
}

// Tutorials upserts the built-in stitch catalog by name, so repeated
// seeding never duplicates entries and local edits to descriptions stick.
func Tutorials(db *gorm.DB) error {
	created := 0
	for _, tutorial := range builtinTutorials {
		var existing models.Tutorial
		err := db.Where("name = ?", tutorial.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&tutorial).Error; err != nil {
			return err
		}
		created++
	}
	if created > 0 {
		log.Printf("✓ %d built-in tutorials created", created)
	}
	return nil
}

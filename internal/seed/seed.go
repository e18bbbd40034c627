// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"yarnhog/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var (
	projectTitles = []string{
		"Granny square blanket", "Chunky winter scarf", "Amigurumi octopus",
		"Market bag", "Baby cardigan", "Mosaic cushion cover", "Sock weight shawl",
		"Temperature blanket", "C2C throw", "Fingerless mitts", "Bucket hat",
		"Ripple stitch afghan", "Lace table runner", "Plant hanger",
	}

	sectionNames = []string{
		"Foundation", "Body", "Border", "Edging", "Sleeves", "Crown",
		"Increases", "Straight rows", "Assembly", "Blocking",
	}

	materialBlocks = []string{
		"Cotton yarn, mercerized; 4mm hook; stitch markers",
		"• Chunky wool, 200g; • 8mm hook; • Darning needle",
		"1. Sock yarn 4-ply; 2. 2.5mm hook; 3. Row counter",
		"Acrylic DK in three colours; 5mm hook",
	}

	yarnNames = []string{
		"Scheepjes Catona", "Drops Safran", "Paintbox Cotton DK",
		"Stylecraft Special DK", "Cascade 220", "Malabrigo Rios",
	}

	commentTexts = []string{
		"Love the colors!", "What yarn did you use?", "This came out so clean.",
		"Adding this to my queue.", "The tension is so even, well done.",
		"How long did this take you?", "Gorgeous stitch definition.",
	}
)

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	if err := Tutorials(db); err != nil {
		return fmt.Errorf("failed to seed tutorials: %w", err)
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	projects, err := createProjects(db, users)
	if err != nil {
		return fmt.Errorf("failed to create projects: %w", err)
	}
	log.Printf("✓ %d projects created", len(projects))

	if err := createMaterials(db, users); err != nil {
		return fmt.Errorf("failed to create materials: %w", err)
	}

	posts, err := createPosts(db, users, projects, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	if err := createEngagement(db, users, posts); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}

	if err := createCounters(db, users); err != nil {
		return fmt.Errorf("failed to create counters: %w", err)
	}

	log.Println("✨ Seeding complete. All test users have the password: password123")
	return nil
}

func clearData(db *gorm.DB) error {
	// Delete children before parents to respect foreign keys.
	tables := []any{
		&models.Rating{}, &models.Like{}, &models.Comment{}, &models.Post{},
		&models.RowCounter{}, &models.Material{}, &models.ProjectSection{},
		&models.Project{}, &models.User{},
	}
	for _, table := range tables {
		if err := db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return err
		}
	}
	return nil
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	// One hash shared by every seeded account; hashing per user is slow.
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		username := fmt.Sprintf("%s%d", gofakeit.Username(), i)
		if len(username) > 30 {
			username = username[:30]
		}
		user := models.User{
			Username: username,
			Email:    fmt.Sprintf("user%d@%s", i, gofakeit.DomainName()),
			Password: string(hashed),
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func createProjects(db *gorm.DB, users []models.User) ([]models.Project, error) {
	var projects []models.Project
	for _, user := range users {
		for i := 0; i < rand.Intn(3)+1; i++ {
			numSections := rand.Intn(4) + 1
			sections := make([]models.ProjectSection, 0, numSections)
			for pos := 0; pos < numSections; pos++ {
				sections = append(sections, models.ProjectSection{
					Position:    pos,
					Name:        sectionNames[rand.Intn(len(sectionNames))],
					Description: gofakeit.Sentence(8),
				})
			}
			project := models.Project{
				Title:     projectTitles[rand.Intn(len(projectTitles))],
				UserID:    user.ID,
				IsPublic:  rand.Intn(4) != 0,
				Materials: materialBlocks[rand.Intn(len(materialBlocks))],
				Sections:  sections,
			}
			if err := db.Create(&project).Error; err != nil {
				return nil, err
			}
			projects = append(projects, project)
		}
	}
	return projects, nil
}

func createMaterials(db *gorm.DB, users []models.User) error {
	for _, user := range users {
		yarn := models.Material{
			UserID:      user.ID,
			Kind:        models.MaterialKindYarn,
			Name:        yarnNames[rand.Intn(len(yarnNames))],
			Color:       gofakeit.Color(),
			WeightGrams: fmt.Sprintf("%d", 50*(rand.Intn(4)+1)),
			LengthM:     fmt.Sprintf("%d", 100*(rand.Intn(4)+1)),
		}
		hook := models.Material{
			UserID:       user.ID,
			Kind:         models.MaterialKindHook,
			Name:         fmt.Sprintf("Hook %0.1fmm", float64(rand.Intn(12)+4)/2),
			SizeMM:       fmt.Sprintf("%0.1f", float64(rand.Intn(12)+4)/2),
			HookMaterial: "aluminium",
			Quantity:     "1",
		}
		if err := db.Create(&yarn).Error; err != nil {
			return err
		}
		if err := db.Create(&hook).Error; err != nil {
			return err
		}
	}
	return nil
}

func createPosts(db *gorm.DB, users []models.User, projects []models.Project, count int) ([]models.Post, error) {
	projectsByUser := make(map[uint][]models.Project)
	for _, p := range projects {
		projectsByUser[p.UserID] = append(projectsByUser[p.UserID], p)
	}

	posts := make([]models.Post, 0, count)
	for i := 0; i < count; i++ {
		user := users[rand.Intn(len(users))]
		post := models.Post{
			Title:   gofakeit.Sentence(4),
			Content: gofakeit.Paragraph(1, 3, 8, "\n"),
			UserID:  user.ID,
		}
		// Roughly half the posts share a project, snapshotting its title.
		if owned := projectsByUser[user.ID]; len(owned) > 0 && rand.Intn(2) == 0 {
			project := owned[rand.Intn(len(owned))]
			post.ProjectID = &project.ID
			post.ProjectTitle = project.Title
		}
		if err := db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createEngagement(db *gorm.DB, users []models.User, posts []models.Post) error {
	likes, comments, ratings := 0, 0, 0
	for _, post := range posts {
		for _, user := range users {
			if rand.Intn(4) == 0 {
				like := models.Like{UserID: user.ID, PostID: post.ID}
				if err := db.Create(&like).Error; err != nil {
					return err
				}
				likes++
			}
			if rand.Intn(8) == 0 {
				comment := models.Comment{
					UserID:  user.ID,
					PostID:  post.ID,
					Content: commentTexts[rand.Intn(len(commentTexts))],
				}
				if err := db.Create(&comment).Error; err != nil {
					return err
				}
				comments++
			}
			if rand.Intn(6) == 0 {
				rating := models.Rating{
					UserID: user.ID,
					PostID: post.ID,
					Score:  rand.Intn(3) + 3,
				}
				if err := db.Create(&rating).Error; err != nil {
					return err
				}
				ratings++
			}
		}
	}
	log.Printf("✓ %d likes, %d comments, %d ratings created", likes, comments, ratings)
	return nil
}

func createCounters(db *gorm.DB, users []models.User) error {
	for _, user := range users {
		counter := models.RowCounter{
			UserID: user.ID,
			Slot:   "default",
			Value:  rand.Intn(120),
		}
		if err := db.Create(&counter).Error; err != nil {
			return err
		}
	}
	return nil
}

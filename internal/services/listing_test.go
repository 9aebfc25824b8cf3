package services

import (
	"testing"

	"github.com/NureKavresievMykyta/fatbeaches-web/internal/models"
)

func foodNames(items []models.FoodItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	items := []models.FoodItem{{Name: "Salad"}, {Name: "Steak"}}

	matched := Search(items, "sa", func(item models.FoodItem) []string {
		return []string{item.Name}
	})

	if len(matched) != 1 || matched[0].Name != "Salad" {
		t.Fatalf("expected only Salad, got %v", foodNames(matched))
	}
}

func TestSearchEmptyTermReturnsEverything(t *testing.T) {
	items := []models.FoodItem{{Name: "Salad"}, {Name: "Steak"}}

	matched := Search(items, "  ", func(item models.FoodItem) []string {
		return []string{item.Name}
	})

	if len(matched) != 2 {
		t.Fatalf("expected all items for blank term, got %v", foodNames(matched))
	}
}

func TestSearchMatchesAnyKey(t *testing.T) {
	users := []models.User{
		{Email: "anna@example.com", DisplayName: "Anna"},
		{Email: "bob@example.com", DisplayName: "Bob"},
	}

	matched := Search(users, "BOB", func(user models.User) []string {
		return []string{user.Email, user.DisplayName}
	})

	if len(matched) != 1 || matched[0].DisplayName != "Bob" {
		t.Fatalf("expected only Bob, got %d matches", len(matched))
	}
}

func TestSortByKeyDirections(t *testing.T) {
	items := []models.FoodItem{{Name: "steak"}, {Name: "Apple"}, {Name: "salad"}}

	SortByKey(items, "", func(item models.FoodItem) string { return item.Name })
	if items[0].Name != "Apple" || items[2].Name != "steak" {
		t.Fatalf("ascending sort wrong: %v", foodNames(items))
	}

	SortByKey(items, "desc", func(item models.FoodItem) string { return item.Name })
	if items[0].Name != "steak" || items[2].Name != "Apple" {
		t.Fatalf("descending sort wrong: %v", foodNames(items))
	}
}

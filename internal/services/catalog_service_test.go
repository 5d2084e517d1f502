package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/internal/models/db_models"
	"learnhub/pkg/utils"
)

func makeCourse(title, description, instructor, category string, difficulty db_models.Difficulty) db_models.Course {
	return db_models.Course{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Title:       title,
		Description: description,
		Instructor:  instructor,
		Category:    category,
		Difficulty:  difficulty,
	}
}

func TestFilterCoursesSearchText(t *testing.T) {
	courses := []db_models.Course{
		makeCourse("Intro to Go", "Concurrency basics", "Ada Lovelace", "Programming", db_models.DifficultyBeginner),
		makeCourse("Watercolor Painting", "Learn go-to brush techniques", "Bob Ross", "Art", db_models.DifficultyBeginner),
		makeCourse("Databases", "Indexes and joins", "Grace Hopper", "Programming", db_models.DifficultyAdvanced),
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"matches title case-insensitively", "intro", []string{"Intro to Go"}},
		{"matches description", "joins", []string{"Databases"}},
		{"matches instructor", "ross", []string{"Watercolor Painting"}},
		{"substring across fields is OR", "go", []string{"Intro to Go", "Watercolor Painting"}},
		{"no match", "quantum", nil},
		{"empty matches everything", "", []string{"Intro to Go", "Watercolor Painting", "Databases"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterCourses(courses, CatalogQuery{Search: tt.search})
			var titles []string
			for _, c := range got {
				titles = append(titles, c.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestFilterCoursesCombinesWithAnd(t *testing.T) {
	courses := []db_models.Course{
		makeCourse("Intro to Go", "Concurrency", "Ada", "Programming", db_models.DifficultyBeginner),
		makeCourse("Advanced Go", "Concurrency", "Ada", "Programming", db_models.DifficultyAdvanced),
		makeCourse("Go for Artists", "Concurrency", "Bob", "Art", db_models.DifficultyBeginner),
	}

	got := FilterCourses(courses, CatalogQuery{
		Search:     "go",
		Category:   "Programming",
		Difficulty: "Beginner",
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Intro to Go", got[0].Title)
}

func TestFilterCoursesAllSentinelDisablesFilter(t *testing.T) {
	courses := []db_models.Course{
		makeCourse("A", "", "", "Programming", db_models.DifficultyBeginner),
		makeCourse("B", "", "", "Art", db_models.DifficultyAdvanced),
	}

	got := FilterCourses(courses, CatalogQuery{Category: FilterAll, Difficulty: FilterAll})
	assert.Len(t, got, 2)
}

func TestPaginateThirtySevenCourses(t *testing.T) {
	courses := make([]db_models.Course, 37)
	for i := range courses {
		courses[i] = makeCourse(fmt.Sprintf("Course %d", i+1), "", "", "Programming", db_models.DifficultyBeginner)
	}

	page1, totalPages := Paginate(courses, 1, CoursesPerPage)
	assert.Len(t, page1, 12)
	assert.Equal(t, 4, totalPages)
	assert.Equal(t, "Course 1", page1[0].Title)
	assert.Equal(t, "Course 12", page1[11].Title)

	page4, _ := Paginate(courses, 4, CoursesPerPage)
	require.Len(t, page4, 1)
	assert.Equal(t, "Course 37", page4[0].Title)

	// Past the last page: empty, never an error.
	page5, totalPages := Paginate(courses, 5, CoursesPerPage)
	assert.Empty(t, page5)
	assert.Equal(t, 4, totalPages)
}

func TestPaginateEmptyCollection(t *testing.T) {
	page, totalPages := Paginate(nil, 1, CoursesPerPage)
	assert.Empty(t, page)
	assert.Equal(t, 0, totalPages)
}

func TestCategoriesDistinctWithAllPrefix(t *testing.T) {
	courses := []db_models.Course{
		makeCourse("A", "", "", "Programming", db_models.DifficultyBeginner),
		makeCourse("B", "", "", "Art", db_models.DifficultyBeginner),
		makeCourse("C", "", "", "Programming", db_models.DifficultyBeginner),
	}

	assert.Equal(t, []string{"All", "Programming", "Art"}, Categories(courses))
}

func TestListCoursesIsIdempotent(t *testing.T) {
	repo := &fakeCourseRepo{courses: []db_models.Course{
		makeCourse("Intro to Go", "Concurrency", "Ada", "Programming", db_models.DifficultyBeginner),
		makeCourse("Databases", "Joins", "Grace", "Programming", db_models.DifficultyAdvanced),
	}}
	svc := NewCatalogService(repo)

	query := CatalogQuery{Category: "Programming"}
	first, err := svc.ListCourses(context.Background(), query, 1)
	require.NoError(t, err)
	second, err := svc.ListCourses(context.Background(), query, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, first.TotalCount)
	assert.Equal(t, 1, first.TotalPages)
}

func TestListCoursesInvalidPage(t *testing.T) {
	svc := NewCatalogService(&fakeCourseRepo{})

	_, err := svc.ListCourses(context.Background(), CatalogQuery{}, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)
}

func TestListCoursesDegradesWhenStoreUnavailable(t *testing.T) {
	repo := &fakeCourseRepo{err: errors.New("connection refused")}
	svc := NewCatalogService(repo)

	page, err := svc.ListCourses(context.Background(), CatalogQuery{}, 1)
	assert.ErrorIs(t, err, utils.ErrCatalogUnavailable)
	assert.Empty(t, page.Courses)
	assert.Equal(t, []string{"All"}, page.Categories)
}

func TestGetCourseByIDNotFound(t *testing.T) {
	svc := NewCatalogService(&fakeCourseRepo{})

	_, err := svc.GetCourseByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrCourseNotFound)
}

func TestListFeaturedCapped(t *testing.T) {
	repo := &fakeCourseRepo{}
	for i := 0; i < 6; i++ {
		course := makeCourse(fmt.Sprintf("Course %d", i+1), "", "", "Programming", db_models.DifficultyBeginner)
		course.Featured = true
		repo.courses = append(repo.courses, course)
	}
	svc := NewCatalogService(repo)

	featured, err := svc.ListFeatured(context.Background())
	require.NoError(t, err)
	assert.Len(t, featured, 4)
}

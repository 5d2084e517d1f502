package services

import (
	"context"
	"log"
	"strings"

	"learnhub/internal/models/db_models"
	"learnhub/internal/models/response_models"
	"learnhub/internal/repositories"
	"learnhub/pkg/utils"
)

// CoursesPerPage is fixed; callers only choose the page number.
const CoursesPerPage = 12

// FilterAll is the sentinel that disables a category or difficulty filter.
const FilterAll = "All"

const featuredLimit = 4

// CatalogQuery is the filter set applied to the course collection. Filters
// combine with AND; the zero value matches everything.
type CatalogQuery struct {
	Search     string
	Category   string
	Difficulty string
}

type CatalogServiceInterface interface {
	ListCourses(ctx context.Context, query CatalogQuery, page int) (response_models.CoursePage, error)
	GetCourseByID(ctx context.Context, id string) (response_models.Course, error)
	ListFeatured(ctx context.Context) ([]response_models.Course, error)
}

type CatalogService struct {
	courseRepo repositories.CourseRepository
}

func NewCatalogService(courseRepo repositories.CourseRepository) CatalogServiceInterface {
	return &CatalogService{
		courseRepo: courseRepo,
	}
}

func (s *CatalogService) ListCourses(ctx context.Context, query CatalogQuery, page int) (response_models.CoursePage, error) {
	if page < 1 {
		return response_models.CoursePage{}, utils.ErrInvalidPage
	}

	courses, err := s.courseRepo.ListAll(ctx)
	if err != nil {
		// Browsing must remain available: degrade to an empty page and let
		// the caller surface the warning.
		log.Printf("Error loading course catalog: %v", err)
		return response_models.CoursePage{
			Courses:    []response_models.Course{},
			Page:       page,
			Categories: []string{FilterAll},
		}, utils.ErrCatalogUnavailable
	}

	filtered := FilterCourses(courses, query)
	pageCourses, totalPages := Paginate(filtered, page, CoursesPerPage)

	result := response_models.CoursePage{
		Courses:    make([]response_models.Course, 0, len(pageCourses)),
		TotalCount: len(filtered),
		TotalPages: totalPages,
		Page:       page,
		Categories: Categories(courses),
	}
	for i := range pageCourses {
		result.Courses = append(result.Courses, toCourseResponse(&pageCourses[i]))
	}
	return result, nil
}

func (s *CatalogService) GetCourseByID(ctx context.Context, id string) (response_models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching course %s: %v", id, err)
		return response_models.Course{}, utils.ErrDatabaseError
	}
	if course == nil {
		return response_models.Course{}, utils.ErrCourseNotFound
	}
	return toCourseResponse(course), nil
}

func (s *CatalogService) ListFeatured(ctx context.Context) ([]response_models.Course, error) {
	courses, err := s.courseRepo.ListFeatured(ctx, featuredLimit)
	if err != nil {
		log.Printf("Error loading featured courses: %v", err)
		return []response_models.Course{}, utils.ErrCatalogUnavailable
	}

	result := make([]response_models.Course, 0, len(courses))
	for i := range courses {
		result = append(result, toCourseResponse(&courses[i]))
	}
	return result, nil
}

// FilterCourses applies search, category, and difficulty with AND semantics.
// The search text matches case-insensitively as a substring of the title,
// description, or instructor name.
func FilterCourses(courses []db_models.Course, query CatalogQuery) []db_models.Course {
	search := strings.ToLower(strings.TrimSpace(query.Search))

	filtered := make([]db_models.Course, 0, len(courses))
	for _, course := range courses {
		if search != "" &&
			!strings.Contains(strings.ToLower(course.Title), search) &&
			!strings.Contains(strings.ToLower(course.Description), search) &&
			!strings.Contains(strings.ToLower(course.Instructor), search) {
			continue
		}
		if query.Category != "" && query.Category != FilterAll && course.Category != query.Category {
			continue
		}
		if query.Difficulty != "" && query.Difficulty != FilterAll && string(course.Difficulty) != query.Difficulty {
			continue
		}
		filtered = append(filtered, course)
	}
	return filtered
}

// Paginate slices out the 1-indexed page. A page past the end yields an empty
// slice, never an error.
func Paginate(courses []db_models.Course, page, pageSize int) ([]db_models.Course, int) {
	totalPages := (len(courses) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= len(courses) {
		return []db_models.Course{}, totalPages
	}
	end := start + pageSize
	if end > len(courses) {
		end = len(courses)
	}
	return courses[start:end], totalPages
}

// Categories returns the distinct categories present in the collection,
// prefixed with the All sentinel, in first-seen order.
func Categories(courses []db_models.Course) []string {
	seen := make(map[string]bool)
	categories := []string{FilterAll}
	for _, course := range courses {
		if course.Category == "" || seen[course.Category] {
			continue
		}
		seen[course.Category] = true
		categories = append(categories, course.Category)
	}
	return categories
}

func toCourseResponse(course *db_models.Course) response_models.Course {
	return response_models.Course{
		ID:          course.ID.String(),
		Title:       course.Title,
		Description: course.Description,
		Category:    course.Category,
		Difficulty:  string(course.Difficulty),
		PriceUSD:    course.PriceUSD,
		IsPremium:   course.IsPremium,
		Instructor:  course.Instructor,
		Enrolled:    course.Enrolled,
		Rating:      course.Rating,
		Duration:    course.Duration,
		Modules:     []string(course.Modules),
		Featured:    course.Featured,
	}
}

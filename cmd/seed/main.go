// Command seed populates the database with demo data: a few schools,
// each with teachers, courses, students and enrollments. All rows are
// created through the service layer so the seeded data obeys the same
// validation and uniqueness rules as API traffic.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"school-service/internal/model"
	"school-service/internal/service"
	"school-service/pkg/config"
	"school-service/pkg/database"
	"school-service/pkg/logger"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	firstNames = []string{"Jane", "Sam", "Ali", "Maria", "Tom", "Aida", "Noah", "Lina", "Omar", "Eva", "Max", "Sara"}
	lastNames  = []string{"Doe", "Lee", "Khan", "Garcia", "Nguyen", "Smith", "Brown", "Ivanov", "Kim", "Ali", "Weber", "Sato"}
	subjects   = []string{"Artificial Intelligence", "Object Oriented Programming", "HTML & CSS", "Advanced ReactJS", "Java Advanced", "Computer Architecture"}
	grades     = []string{"Grade 1", "Grade 2", "Grade 3", "Grade 4", "Grade 5", "Grade 6"}
	courseName = []string{"Algebra I", "Intro to Go", "World History", "Physics Lab", "Creative Writing", "Data Structures", "Biology Basics", "Music Theory"}
)

func main() {
	tenants := flag.Int("tenants", 2, "number of demo schools to create")
	teachers := flag.Int("teachers", 6, "teachers per school")
	students := flag.Int("students", 25, "students per school")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: .env file not found or error loading: %v\n", err)
	}

	conf, err := config.Load("school")
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.InitLogger(&logger.LogConfig{
		Level:       conf.Log.Level,
		Environment: conf.Server.Env,
		ServiceName: conf.ServiceName + "-seed",
	}); err != nil {
		fmt.Printf("Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.GetLogger()

	db, err := database.InitDB(&conf.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	if err := database.MigrateModels(
		&model.Tenant{},
		&model.User{},
		&model.Teacher{},
		&model.Student{},
		&model.Course{},
		&model.Enrollment{},
	); err != nil {
		log.Fatal("Failed to migrate database models", zap.Error(err))
	}

	accountSvc := service.NewAccountService(db)
	teacherSvc := service.NewTeacherService(db, service.PolicyOrphan)
	studentSvc := service.NewStudentService(db, service.PolicyOrphan)
	courseSvc := service.NewCourseService(db, service.PolicyOrphan)
	enrollmentSvc := service.NewEnrollmentService(db)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 1; i <= *tenants; i++ {
		tenant, _, err := accountSvc.Register(service.RegisterInput{
			SchoolName: fmt.Sprintf("Demo School %d", i),
			Address:    fmt.Sprintf("%d Main Street", i),
			Email:      fmt.Sprintf("admin%d@demo.school", i),
			Password:   "demo-password",
		})
		if err != nil {
			log.Fatal("Failed to register demo tenant", zap.Int("n", i), zap.Error(err))
		}

		seedTenant(log, rng, tenant.ID, *teachers, *students, teacherSvc, studentSvc, courseSvc, enrollmentSvc)
		log.Info("Seeded demo data", zap.Uint("tenant_id", tenant.ID), zap.String("school", tenant.SchoolName))
	}
}

func seedTenant(
	log *zap.Logger,
	rng *rand.Rand,
	tenantID uint,
	teacherCount, studentCount int,
	teacherSvc *service.TeacherService,
	studentSvc *service.StudentService,
	courseSvc *service.CourseService,
	enrollmentSvc *service.EnrollmentService,
) {
	var teachers []*model.Teacher
	for i := 0; i < teacherCount; i++ {
		t, err := teacherSvc.Create(tenantID, service.TeacherInput{
			FirstName: pick(rng, firstNames),
			LastName:  pick(rng, lastNames),
			Subject:   pick(rng, subjects),
		})
		if err != nil {
			log.Fatal("Failed to seed teacher", zap.Error(err))
		}
		teachers = append(teachers, t)
	}

	var courses []*model.Course
	for _, name := range courseName {
		teacher := teachers[rng.Intn(len(teachers))]
		c, err := courseSvc.Create(tenantID, service.CourseInput{
			CourseName:  name,
			Description: fmt.Sprintf("Demo course taught by %s %s", teacher.FirstName, teacher.LastName),
			TeacherID:   teacher.ID,
		})
		if err != nil {
			log.Fatal("Failed to seed course", zap.Error(err))
		}
		courses = append(courses, c)
	}

	for i := 0; i < studentCount; i++ {
		s, err := studentSvc.Create(tenantID, service.StudentInput{
			FirstName: pick(rng, firstNames),
			LastName:  pick(rng, lastNames),
			Grade:     pick(rng, grades),
		})
		if err != nil {
			log.Fatal("Failed to seed student", zap.Error(err))
		}

		// Enroll each student in 1-4 random courses. A random pick may
		// repeat a course; the duplicate rule rejects it and we move on.
		for n := 1 + rng.Intn(4); n > 0; n-- {
			course := courses[rng.Intn(len(courses))]
			date := time.Now().AddDate(0, 0, -rng.Intn(365)).Format("2006-01-02")
			_, err := enrollmentSvc.Create(tenantID, service.EnrollmentInput{
				StudentID:      s.ID,
				CourseID:       course.ID,
				EnrollmentDate: date,
			})
			var dup *service.DuplicateEnrollmentError
			if err != nil && !errors.As(err, &dup) {
				log.Fatal("Failed to seed enrollment", zap.Error(err))
			}
		}
	}
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"shiftmaster/internal/config"
	"shiftmaster/internal/db"
	"shiftmaster/internal/model"
	"shiftmaster/internal/repository"
)

// SeedFile is the YAML document loaded by the seed command.
type SeedFile struct {
	Roles []struct {
		Name  string `yaml:"name"`
		Color string `yaml:"color"`
	} `yaml:"roles"`
	TimeSlots []struct {
		Label     string `yaml:"label"`
		TimeRange string `yaml:"time_range"`
	} `yaml:"time_slots"`
	Employees []struct {
		Name           string `yaml:"name"`
		Responsibility string `yaml:"responsibility"`
		Contact        string `yaml:"contact"`
		Type           string `yaml:"type"`
	} `yaml:"employees"`
}

// seedCounts tracks created and updated rows per entity.
type seedCounts struct {
	created int
	updated int
}

func main() {
	path := flag.String("file", "seed.yaml", "path to the seed file")
	flag.Parse()

	log := zap.Must(zap.NewDevelopment())
	defer func() { _ = log.Sync() }()

	cfg := config.Load()

	seed, err := loadSeedFile(*path)
	if err != nil {
		log.Fatal("load seed file", zap.String("path", *path), zap.Error(err))
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		log.Fatal("migrate database", zap.Error(err))
	}

	ctx := context.Background()

	roles, err := seedRoles(ctx, repository.NewRoleRepository(gormDB), seed)
	if err != nil {
		log.Fatal("seed roles", zap.Error(err))
	}
	slots, err := seedTimeSlots(ctx, repository.NewTimeSlotRepository(gormDB), seed)
	if err != nil {
		log.Fatal("seed time slots", zap.Error(err))
	}
	employees, err := seedEmployees(ctx, repository.NewEmployeeRepository(gormDB), seed)
	if err != nil {
		log.Fatal("seed employees", zap.Error(err))
	}

	log.Info("seed completed",
		zap.Int("roles_created", roles.created), zap.Int("roles_updated", roles.updated),
		zap.Int("time_slots_created", slots.created), zap.Int("time_slots_updated", slots.updated),
		zap.Int("employees_created", employees.created), zap.Int("employees_updated", employees.updated),
	)
}

func loadSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseSeed(data)
}

func parseSeed(data []byte) (*SeedFile, error) {
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed yaml: %w", err)
	}
	for _, e := range seed.Employees {
		if !model.EmployeeType(e.Type).Valid() {
			return nil, fmt.Errorf("employee %q: type must be FT or PT, got %q", e.Name, e.Type)
		}
	}
	return &seed, nil
}

// seedRoles creates missing roles and refreshes the color of existing ones.
func seedRoles(ctx context.Context, repo repository.RoleRepository, seed *SeedFile) (seedCounts, error) {
	var counts seedCounts
	for _, item := range seed.Roles {
		existing, err := repo.FindByName(ctx, item.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return counts, fmt.Errorf("check role %s: %w", item.Name, err)
		}
		if existing != nil {
			existing.Color = item.Color
			if err := repo.Update(ctx, existing); err != nil {
				return counts, fmt.Errorf("update role %s: %w", item.Name, err)
			}
			counts.updated++
			continue
		}
		if err := repo.Create(ctx, &model.Role{Name: item.Name, Color: item.Color}); err != nil {
			return counts, fmt.Errorf("create role %s: %w", item.Name, err)
		}
		counts.created++
	}
	return counts, nil
}

func seedTimeSlots(ctx context.Context, repo repository.TimeSlotRepository, seed *SeedFile) (seedCounts, error) {
	var counts seedCounts
	for _, item := range seed.TimeSlots {
		existing, err := repo.FindByLabel(ctx, item.Label)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return counts, fmt.Errorf("check time slot %s: %w", item.Label, err)
		}
		if existing != nil {
			existing.TimeRange = item.TimeRange
			if err := repo.Update(ctx, existing); err != nil {
				return counts, fmt.Errorf("update time slot %s: %w", item.Label, err)
			}
			counts.updated++
			continue
		}
		if err := repo.Create(ctx, &model.TimeSlot{Label: item.Label, TimeRange: item.TimeRange}); err != nil {
			return counts, fmt.Errorf("create time slot %s: %w", item.Label, err)
		}
		counts.created++
	}
	return counts, nil
}

// seedEmployees matches employees by name, the first match wins.
func seedEmployees(ctx context.Context, repo repository.EmployeeRepository, seed *SeedFile) (seedCounts, error) {
	var counts seedCounts
	for _, item := range seed.Employees {
		existing, err := repo.FindByName(ctx, item.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return counts, fmt.Errorf("check employee %s: %w", item.Name, err)
		}
		if existing != nil {
			existing.Responsibility = item.Responsibility
			existing.Contact = item.Contact
			existing.Type = model.EmployeeType(item.Type)
			if err := repo.Update(ctx, existing); err != nil {
				return counts, fmt.Errorf("update employee %s: %w", item.Name, err)
			}
			counts.updated++
			continue
		}
		employee := &model.Employee{
			Name:           item.Name,
			Responsibility: item.Responsibility,
			Contact:        item.Contact,
			Type:           model.EmployeeType(item.Type),
		}
		if err := repo.Create(ctx, employee); err != nil {
			return counts, fmt.Errorf("create employee %s: %w", item.Name, err)
		}
		counts.created++
	}
	return counts, nil
}

package config

import "codefolio.dev/internal/models"

// DefaultProjects returns the portfolio catalog. The catalog is defined once
// here, built at startup and never mutated; handlers receive read-only views
// through the project service.
func DefaultProjects() *models.ProjectList {
	return &models.ProjectList{
		Projects: []models.Project{
			{
				ID:          "memory-allocator",
				Name:        "Custom Memory Allocator",
				Description: "High-performance memory allocator with explicit control over allocation strategies",
				Tags:        []string{"C", "Memory Management", "Performance"},
				Tabs:        []string{"code", "preview"},
				CodeFiles: []string{
					"memory-allocator/allocator.h",
					"memory-allocator/allocator.c",
					"memory-allocator/test_allocator.c",
				},
				PreviewTemplate: "projects/memory-allocator.html",
			},
			{
				ID:          "crypto-primitives",
				Name:        "Cryptographic Primitives",
				Description: "Implementation of core cryptographic algorithms from scratch",
				Tags:        []string{"C", "Cryptography", "Security"},
				Tabs:        []string{"code", "preview"},
				CodeFiles: []string{
					"crypto-primitives/crypto.h",
					"crypto-primitives/aes.c",
					"crypto-primitives/sha256.c",
				},
				PreviewTemplate: "projects/crypto.html",
			},
			{
				ID:          "embedded-rtos",
				Name:        "Real-Time OS Kernel",
				Description: "Minimal RTOS kernel for embedded systems with preemptive scheduling",
				Tags:        []string{"C", "RTOS", "Embedded"},
				Tabs:        []string{"code", "preview"},
				CodeFiles: []string{
					"rtos-kernel/rtos.h",
					"rtos-kernel/scheduler.c",
				},
				PreviewTemplate: "projects/rtos.html",
			},
		},
	}
}

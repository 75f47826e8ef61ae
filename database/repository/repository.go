package repository

import (
	appointmentRepo "hospital/database/repository/appointment"
	scheduleRepo "hospital/database/repository/schedule"
)

// Re-export the ScheduleRepository interface and constructor.
type ScheduleRepository = scheduleRepo.ScheduleRepository

var NewMongoScheduleRepo = scheduleRepo.NewMongoScheduleRepo

// Re-export the AppointmentRepository interface and constructor.
type AppointmentRepository = appointmentRepo.AppointmentRepository

var NewMongoAppointmentRepo = appointmentRepo.NewMongoAppointmentRepo

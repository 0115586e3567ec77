package service

import "errors"

var ErrStudentNotFound = errors.New("student not found")

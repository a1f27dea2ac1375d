package mocks

// Common utils and helpers can go here

// NOTE: mocks generated using https://github.com/vektra/mockery

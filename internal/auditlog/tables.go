package auditlog

import (
	"fmt"
	"strconv"
	"time"
)

var SourceColumns = []Column{
	{Title: "File Name", Width: 30},
	{Title: "Size (bytes)", Width: 15},
	{Title: "Created", Width: 25},
	{Title: "Last Modified", Width: 25},
}

var DestinationColumns = []Column{
	{Title: "File Name", Width: 30},
	{Title: "Size (bytes)", Width: 15},
	{Title: "Last Modified", Width: 25},
	{Title: "Status", Width: 30},
}

// StatusCopied is written in the status column of the destination log.
const StatusCopied = "File copied"

// SourceLog records the inventory of the source directory and every deletion.
type SourceLog struct {
	*Log
	dir string
}

func CreateSource(path, dir string) (*SourceLog, error) {
	l, err := Create(path, SourceColumns)
	if err != nil {
		return nil, err
	}
	return &SourceLog{Log: l, dir: dir}, nil
}

func (s *SourceLog) Begin(now time.Time) error {
	return s.Header(fmt.Sprintf("Files in directory %s at %s:", s.dir, Timestamp(now)))
}

func (s *SourceLog) Inventory(name string, size int64, created, modified time.Time) error {
	return s.Row(name, strconv.FormatInt(size, 10), Timestamp(created), Timestamp(modified))
}

func (s *SourceLog) Deleted(name string, days int) error {
	return s.Line(fmt.Sprintf("Deleting file: %s because it is older than %d days", name, days))
}

func (s *SourceLog) End(now time.Time) error {
	return s.Footer("Operation completed at " + Timestamp(now))
}

// DestinationLog records every file copied into the backup directory.
type DestinationLog struct {
	*Log
	dir string
}

func CreateDestination(path, dir string) (*DestinationLog, error) {
	l, err := Create(path, DestinationColumns)
	if err != nil {
		return nil, err
	}
	return &DestinationLog{Log: l, dir: dir}, nil
}

func (d *DestinationLog) Begin(now time.Time) error {
	return d.Header(fmt.Sprintf("Files copied to %s at %s:", d.dir, Timestamp(now)))
}

func (d *DestinationLog) Copied(name string, size int64, modified time.Time) error {
	return d.Row(name, strconv.FormatInt(size, 10), Timestamp(modified), StatusCopied)
}

func (d *DestinationLog) End(now time.Time) error {
	return d.Footer("Copy completed at " + Timestamp(now))
}

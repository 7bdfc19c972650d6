package report

import (
	"fmt"

	fs "github.com/ungerik/go-fs"
)

// File is the result of an export:
// the suggested file name and the document bytes.
// Delivering the file is up to the caller.
type File struct {
	Name string
	Data []byte
}

// MemFile returns the file as fs.MemFile
// for APIs working with go-fs file interfaces.
func (f *File) MemFile() fs.MemFile {
	return fs.MemFile{FileName: f.Name, FileData: f.Data}
}

// SaveTo writes the file with its suggested name
// into the directory dir and returns the written file.
func (f *File) SaveTo(dir fs.File) (fs.File, error) {
	if f == nil || f.Name == "" {
		return "", fmt.Errorf("can't save file without name to %s", dir)
	}
	if err := dir.MakeAllDirs(); err != nil {
		return "", err
	}
	file := dir.Join(f.Name)
	if err := file.WriteAll(f.Data); err != nil {
		return "", err
	}
	return file, nil
}

package validate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ndatools/ndav/internal/config"
	"github.com/ndatools/ndav/internal/output"
)

// FileValidator validates a single metadata or data file.
// dataDir, when non-empty, is the directory holding the data files the
// metadata references.
type FileValidator interface {
	DataType() string
	ValidateFile(path, dataDir string) *Result
}

// Options controls a collection validation run.
type Options struct {
	// DataDir overrides the collection's configured data_directory.
	DataDir string

	// Sequential disables parallel task execution.
	Sequential bool
}

// task is one file queued for validation.
type task struct {
	dataType  string
	file      string
	dataDir   string
	validator FileValidator
}

// CollectionValidator runs all applicable validators over one collection.
type CollectionValidator struct {
	collectionID string
	cfg          *config.Config
	cc           config.CollectionConfig
}

// NewCollectionValidator creates a validator for a configured collection.
func NewCollectionValidator(collectionID string, cfg *config.Config) (*CollectionValidator, error) {
	cc, ok := cfg.Collection(collectionID)
	if !ok {
		return nil, fmt.Errorf("collection %s not configured", collectionID)
	}

	return &CollectionValidator{
		collectionID: collectionID,
		cfg:          cfg,
		cc:           cc,
	}, nil
}

// Validate discovers the collection's data files and validates them.
// Tasks run in parallel unless opts.Sequential is set; results are
// returned in deterministic order regardless.
func (v *CollectionValidator) Validate(ctx context.Context, opts Options) (*Summary, error) {
	root := opts.DataDir
	if root == "" {
		root = v.cc.DataDirectory
	}

	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("data directory not found: %s", root)
	}

	tasks, err := v.discoverTasks(root)
	if err != nil {
		return nil, err
	}

	log := output.CollectionLogger(v.collectionID)
	if len(tasks) == 0 {
		log.Warn("no data files found", "dir", root)
	}

	var results []TaskResult
	if opts.Sequential || len(tasks) <= 1 {
		results = runSequential(ctx, tasks)
	} else {
		results = runParallel(ctx, tasks)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Deterministic output order
	sort.Slice(results, func(i, j int) bool {
		if results[i].DataType != results[j].DataType {
			return results[i].DataType < results[j].DataType
		}
		return results[i].File < results[j].File
	})

	summary := summarize(v.collectionID, results)
	summary.OversizeFiles = v.findOversizeFiles(root)
	summary.WarningCount += len(summary.OversizeFiles)

	log.Info("validation complete",
		"all_valid", summary.AllValid,
		"errors", summary.ErrorCount,
		"warnings", summary.WarningCount,
	)

	return summary, nil
}

// discoverTasks finds the standard per-type metadata files under root.
func (v *CollectionValidator) discoverTasks(root string) ([]task, error) {
	var tasks []task

	identity := append([]string{}, config.IdentityFields...)

	// Subject and demographics metadata live under metadata/.
	subjectFile := filepath.Join(root, "metadata", "research_subject.csv")
	if fileExists(subjectFile) {
		tasks = append(tasks, task{
			dataType:  "subject",
			file:      subjectFile,
			validator: NewSubjectValidator(v.collectionID, identity),
		})
	}

	demoFile := filepath.Join(root, "metadata", "demographics.csv")
	if fileExists(demoFile) {
		tasks = append(tasks, task{
			dataType:  "demographics",
			file:      demoFile,
			validator: NewDemographicsValidator(v.collectionID, identity),
		})
	}

	// Behavioral data: every allowed file under behavioral/.
	behavioralExts := v.cfg.ExtensionsFor(config.TypeBehavioral)
	behavioralFiles, err := globByExtension(filepath.Join(root, "behavioral"), behavioralExts)
	if err != nil {
		return nil, err
	}
	for _, f := range behavioralFiles {
		tasks = append(tasks, task{
			dataType:  "behavioral",
			file:      f,
			validator: NewBehavioralValidator(v.collectionID, v.requiredFor(config.TypeBehavioral), behavioralExts),
		})
	}

	// EEG and MRI metadata CSVs sit next to the data files they reference.
	eegFiles, err := globByExtension(filepath.Join(root, "eeg"), []string{".csv"})
	if err != nil {
		return nil, err
	}
	for _, f := range eegFiles {
		tasks = append(tasks, task{
			dataType:  "eeg",
			file:      f,
			dataDir:   filepath.Join(root, "eeg"),
			validator: NewEEGValidator(v.collectionID, v.requiredFor(config.TypeEEG)),
		})
	}

	mriFiles, err := globByExtension(filepath.Join(root, "mri"), []string{".csv"})
	if err != nil {
		return nil, err
	}
	for _, f := range mriFiles {
		tasks = append(tasks, task{
			dataType:  "mri",
			file:      f,
			dataDir:   filepath.Join(root, "mri"),
			validator: NewMRIValidator(v.collectionID, v.requiredFor(config.TypeMRI), v.cfg.ExtensionsFor(config.TypeMRI)),
		})
	}

	return tasks, nil
}

// requiredFor returns the required column set for a data type: the
// collection's own required_fields when the type matches the collection,
// identity fields otherwise.
func (v *CollectionValidator) requiredFor(dataType string) []string {
	if v.cc.Type == dataType && len(v.cc.RequiredFields) > 0 {
		return v.cc.RequiredFields
	}
	return append([]string{}, config.IdentityFields...)
}

// runParallel validates tasks concurrently, one goroutine per task.
func runParallel(ctx context.Context, tasks []task) []TaskResult {
	resultChan := make(chan TaskResult, len(tasks))
	var wg sync.WaitGroup

	for _, tk := range tasks {
		wg.Add(1)
		go func(tk task) {
			defer wg.Done()
			resultChan <- runTask(ctx, tk)
		}(tk)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var results []TaskResult
	for result := range resultChan {
		results = append(results, result)
	}

	return results
}

// runSequential validates tasks one at a time.
func runSequential(ctx context.Context, tasks []task) []TaskResult {
	results := make([]TaskResult, 0, len(tasks))
	for _, tk := range tasks {
		results = append(results, runTask(ctx, tk))
	}
	return results
}

// runTask executes one validation task. Panics and cancellation become
// invalid results rather than aborting the run.
func runTask(ctx context.Context, tk task) (tr TaskResult) {
	tr = TaskResult{DataType: tk.dataType, File: tk.file}

	if err := ctx.Err(); err != nil {
		tr.Result = invalid("validation canceled: %v", err)
		return tr
	}

	defer func() {
		if p := recover(); p != nil {
			tr.Result = invalid("validator failure on %s: %v", filepath.Base(tk.file), p)
		}
	}()

	tr.Result = tk.validator.ValidateFile(tk.file, tk.dataDir)
	return tr
}

// findOversizeFiles walks the collection directory for files over the
// configured upload size limit.
func (v *CollectionValidator) findOversizeFiles(root string) []string {
	limit := v.cfg.FileSizeLimitBytes()
	if limit <= 0 {
		return nil
	}

	var oversize []string
	_ = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if info.Size() > limit {
			oversize = append(oversize, path)
		}
		return nil
	})

	sort.Strings(oversize)
	return oversize
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// globByExtension lists files in dir whose extension is in exts.
// A missing dir yields no files.
func globByExtension(dir string, exts []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, allowed := range exts {
			if ext == strings.ToLower(allowed) {
				files = append(files, filepath.Join(dir, e.Name()))
				break
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

package commands

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/oliverbestmann/vulp/cull"
	"github.com/oliverbestmann/vulp/glm"
	"github.com/oliverbestmann/vulp/scene"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

type cullOptions struct {
	Frames      int
	Workers     int
	Aspect      float32
	Profile     string
	ProfilePath string
}

// cullResult sums up one culling mode over all frames.
type cullResult struct {
	Mode    string
	Total   time.Duration
	Visible int
}

func addCull(topLevel *cobra.Command, o *rootOptions) {
	co := cullOptions{Frames: 360, Aspect: 16.0 / 9.0, ProfilePath: "."}

	cmd := &cobra.Command{
		Use:   "cull",
		Short: "Benchmark frustum culling over the generated terrain.",
		Long: `Orbits the camera once around the terrain and culls all boxes against
the frustum of every frame, once sequentially and once in parallel.`,
		Example: `
vulp cull
vulp cull --frames 1000 --workers 4 --profile cpu
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stop, err := startProfile(co.Profile, co.ProfilePath)
			if err != nil {
				return err
			}

			defer stop()

			boxes := scene.Terrain(o.Config.Scene.TerrainOptions())

			if co.Workers == 0 {
				co.Workers = o.Config.Scene.Workers
			}

			results, err := benchmarkCull(cmd.Context(), o.Config.Camera.OrbitCamera(), boxes, co)
			if err != nil {
				return err
			}

			bold := color.New(color.Bold)

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold.Sprint("MODE"), bold.Sprint("BOXES"), bold.Sprint("FRAMES"), bold.Sprint("TOTAL"), bold.Sprint("PER FRAME"), bold.Sprint("VISIBLE"))

			for _, result := range results {
				perFrame := result.Total / time.Duration(co.Frames)

				tbl.AddRow(
					result.Mode,
					strconv.Itoa(len(boxes)),
					strconv.Itoa(co.Frames),
					result.Total.Round(time.Microsecond).String(),
					perFrame.Round(time.Microsecond).String(),
					fmt.Sprintf("%1.1f%%", 100*float64(result.Visible)/float64(co.Frames*max(1, len(boxes)))),
				)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}

	cmd.Flags().IntVar(&co.Frames, "frames", co.Frames, "Number of camera positions.")
	cmd.Flags().IntVar(&co.Workers, "workers", 0, "Goroutines for parallel culling, defaults to scene.workers.")
	cmd.Flags().Float32Var(&co.Aspect, "aspect", co.Aspect, "Aspect ratio of the viewport.")
	cmd.Flags().StringVar(&co.Profile, "profile", "", "Write a cpu or mem profile.")
	cmd.Flags().StringVar(&co.ProfilePath, "profile-path", co.ProfilePath, "Directory to write the profile to.")

	topLevel.AddCommand(cmd)
}

func startProfile(mode, path string) (func(), error) {
	switch mode {
	case "":
		return func() {}, nil

	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath(path), profile.NoShutdownHook).Stop, nil

	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath(path), profile.NoShutdownHook).Stop, nil

	default:
		return nil, fmt.Errorf("unknown profile mode %q, expected cpu or mem", mode)
	}
}

func benchmarkCull(ctx context.Context, camera scene.OrbitCamera, boxes []cull.Box, co cullOptions) ([]cullResult, error) {
	if co.Frames <= 0 {
		return nil, fmt.Errorf("frames must be positive, got %d", co.Frames)
	}

	sequential := cullResult{Mode: "sequential"}
	parallel := cullResult{Mode: fmt.Sprintf("parallel (%d workers)", co.Workers)}
	if co.Workers == 0 {
		parallel.Mode = "parallel"
	}

	step := glm.Rad(2 * math.Pi / float64(co.Frames))

	var visible []int
	for range co.Frames {
		camera.Orbit(step, 0)

		frustum, err := cull.NewFrustum(camera.ViewProjection(co.Aspect))
		if err != nil {
			return nil, fmt.Errorf("camera frustum: %w", err)
		}

		startTime := time.Now()
		visible = cull.Visible(&frustum, boxes, visible[:0])
		sequential.Total += time.Since(startTime)
		sequential.Visible += len(visible)

		startTime = time.Now()
		visibleParallel, err := cull.VisibleParallel(ctx, &frustum, boxes, co.Workers)
		if err != nil {
			return nil, err
		}

		parallel.Total += time.Since(startTime)
		parallel.Visible += len(visibleParallel)

		if !slices.Equal(visible, visibleParallel) {
			return nil, fmt.Errorf("parallel culling found %d boxes, sequential %d", len(visibleParallel), len(visible))
		}
	}

	return []cullResult{sequential, parallel}, nil
}

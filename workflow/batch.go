package workflow

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/zooyer/dxfmap/geo"
)

// Job 一张待导入的平面图
type Job struct {
	Name   string     `json:"name" yaml:"name" mapstructure:"name"`
	File   string     `json:"file" yaml:"file" mapstructure:"file"`
	Origin geo.Origin `json:"origin" yaml:"origin" mapstructure:"origin"`
}

// RunBatch 并发导入多张平面图，每张图独立打开文件，互不共享状态。
// limit <= 0 表示不限制并发数；结果顺序与 jobs 一致，任意一张失败则取消其余未开始的任务。
func RunBatch(ctx context.Context, jobs []Job, limit int) ([]*Result, error) {
	results := make([]*Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := RunFile(job.File, job.Origin)
			if err != nil {
				return err
			}
			result.Name = job.Name
			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

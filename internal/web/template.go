package web

const pageTemplate = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
  body { font-family: -apple-system, "PingFang SC", "Microsoft YaHei", sans-serif; margin: 0; background: #f5f6f8; color: #222; }
  .page { max-width: 640px; margin: 0 auto; padding: 16px; }
  .page-title { font-size: 20px; font-weight: 600; margin: 8px 0 16px; }
  .week-tabs { display: flex; gap: 8px; margin-bottom: 16px; }
  .week-tab { flex: 1; text-align: center; padding: 10px 0; border-radius: 8px; background: #fff; color: #555; text-decoration: none; border: 1px solid #e3e5e8; }
  .week-tab.active { background: #2f6fed; color: #fff; border-color: #2f6fed; }
  .tab-count { margin-left: 6px; font-size: 12px; background: rgba(0,0,0,.15); border-radius: 10px; padding: 1px 7px; }
  .banner { padding: 10px 12px; border-radius: 8px; margin-bottom: 12px; }
  .banner.loading { background: #eef3ff; color: #2f6fed; }
  .banner.error { background: #fdecec; color: #c0392b; }
  .schedule { transition: opacity .15s ease; }
  .schedule.is-fading { opacity: 0; }
  .class-card { position: relative; display: flex; justify-content: space-between; gap: 12px; background: #fff; border-radius: 10px; padding: 14px; margin-bottom: 10px; box-shadow: 0 1px 2px rgba(0,0,0,.05); }
  .course-name { font-size: 16px; font-weight: 600; margin: 4px 0; }
  .course-datetime { font-size: 13px; color: #777; }
  .meta { font-size: 13px; margin: 2px 0; }
  .meta-label { color: #999; margin-right: 6px; }
  .status-badge { display: inline-block; font-size: 12px; border-radius: 4px; padding: 1px 8px; color: #fff; }
  .status-ongoing { background: #27ae60; }
  .status-planned { background: #2f6fed; }
  .status-completed { background: #95a5a6; }
  .status-cancelled { background: #c0392b; }
  .attendance-badge { position: absolute; right: 12px; bottom: 10px; font-size: 12px; color: #27ae60; }
  .empty { text-align: center; color: #999; padding: 40px 0; }
</style>
</head>
<body>
<div class="page">
  <h1 class="page-title">{{.Title}}</h1>
  <nav class="week-tabs">
    {{- range .Tabs}}
    <a class="week-tab{{if .Active}} active{{end}}" href="/?week={{.Week}}"
       aria-label="{{.AriaLabel}}" aria-selected="{{if .Active}}true{{else}}false{{end}}">
      {{.Label}}{{if .ShowCount}}<span class="tab-count">{{.Count}}</span>{{end}}
    </a>
    {{- end}}
  </nav>
  {{- if .Loading}}
  <div class="banner loading">正在加载课程…</div>
  {{- end}}
  {{- if .ErrorMessage}}
  <div class="banner error">{{.ErrorMessage}}</div>
  {{- end}}
  <main class="schedule {{.FadeClass}}">
    {{- if .Empty}}
    <div class="empty">{{.EmptyText}}</div>
    {{- else}}
    {{- range .Cards}}
    <section class="class-card">
      <div class="card-left">
        {{- if .Status}}
        <span class="status-badge {{.StatusClass}}">{{.Status}}</span>
        {{- end}}
        <div class="course-name">{{.Name}}</div>
        <div class="course-datetime">{{.TimeText}}</div>
      </div>
      <div class="card-right">
        <div class="meta"><span class="meta-label">老师</span><span class="meta-value">{{.Teacher}}</span></div>
        <div class="meta"><span class="meta-label">班级</span><span class="meta-value">{{.Clazz}}</span></div>
      </div>
      {{- if .Attendance}}
      <div class="attendance-badge">{{.Attendance}}</div>
      {{- end}}
    </section>
    {{- end}}
    {{- end}}
  </main>
</div>
</body>
</html>
`
